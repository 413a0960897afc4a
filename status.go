package pvcam

import (
	"unicode/utf8"

	"github.com/kevmo314/go-pvcam/pkg/cbuf"
	"github.com/kevmo314/go-pvcam/pkg/params"
)

func succeeded(status params.Status) bool {
	return status == params.StatusOK
}

// check turns a status into an error. On failure it immediately fetches the
// SDK's last error code and renders it, so nothing else may run on this
// process's PVCAM state between the failing call and check.
func (l *Library) check(status params.Status) error {
	if succeeded(status) {
		return nil
	}
	return l.lastError()
}

func (l *Library) lastError() *DeviceError {
	code := l.api.ErrorCode()

	buf := cbuf.New(params.ErrorMsgLen)
	defer buf.Free()

	msg := unknownErrorMessage
	if succeeded(l.api.ErrorMessage(code, buf.Ptr())) {
		if raw := buf.Terminated(); utf8.Valid(raw) {
			msg = string(raw)
		} else {
			msg = (&EncodingError{Data: raw}).Error()
		}
	}
	l.logger.Warn("pvcam call failed", "code", code, "message", msg)
	return &DeviceError{Code: code, Message: msg}
}
