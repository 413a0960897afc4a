package pvcam

import (
	"github.com/google/uuid"
	"github.com/kevmo314/go-pvcam/pkg/params"
)

// Camera is an open session. It carries no state besides the handle; every
// call goes to the device.
type Camera struct {
	lib     *Library
	handle  Handle
	name    string
	session uuid.UUID
}

func (c *Camera) Handle() Handle {
	return c.handle
}

func (c *Camera) Name() string {
	return c.name
}

// Session identifies this Open call in logs.
func (c *Camera) Session() uuid.UUID {
	return c.session
}

// Get reads the current value of p.
func (c *Camera) Get(p Parameter) (ParameterValue, error) {
	return c.GetAttribute(p, params.AttrCurrent)
}

func (c *Camera) GetAttribute(p Parameter, attr params.Attribute) (ParameterValue, error) {
	v, err := c.lib.Get(c.handle, p, attr)
	if err != nil {
		c.lib.logger.Debug("get failed", "session", c.session, "param", p.Name(), "err", err)
	}
	return v, err
}

func (c *Camera) Set(p Parameter, v ParameterValue) error {
	err := c.lib.Set(c.handle, p, v)
	if err != nil {
		c.lib.logger.Debug("set failed", "session", c.session, "param", p.Name(), "err", err)
	}
	return err
}

func (c *Camera) Access(p Parameter) (Access, error) {
	return c.lib.Access(c.handle, p)
}

func (c *Camera) IsAvailable(p Parameter) (bool, error) {
	return c.lib.IsAvailable(c.handle, p)
}

func (c *Camera) ResolveType(p Parameter) (ParameterType, error) {
	return c.lib.ResolveType(c.handle, p)
}

// Options lists the legal values of an enumeration parameter.
func (c *Camera) Options(p Parameter) ([]EnumOption, error) {
	if err := c.lib.requireAvailable(c.handle, p); err != nil {
		return nil, err
	}
	typ, err := c.lib.ResolveType(c.handle, p)
	if err != nil {
		return nil, err
	}
	if typ != TypeEnum {
		return nil, &TypeMismatchError{Parameter: p, Type: typ, Value: Enum{}}
	}
	return c.lib.ReadOptions(c.handle, p)
}

func (c *Camera) Close() error {
	return c.lib.Close(c.handle)
}
