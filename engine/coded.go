package engine

import (
	"xdao.co/plh/model"
	"xdao.co/plh/payload"
	"xdao.co/plh/stamp"
)

// Coded projects a structured engine error onto its boundary representation.
// Consumers that serialize errors (event sinks, API layers) branch on the
// stable code rather than the internal Kind. nil maps to nil; errors from
// outside the engine's taxonomy map to ErrInternal.
func Coded(err error) *model.CodedError {
	if err == nil {
		return nil
	}
	switch {
	case stamp.IsKind(err, stamp.KindEmptyContent):
		return model.NewError(model.ErrEmptyContent, err.Error())
	case stamp.IsKind(err, stamp.KindInsufficientEntropy):
		return model.NewError(model.ErrInsufficientEntropy, err.Error())
	case stamp.IsKind(err, stamp.KindAlreadySigned):
		return model.NewError(model.ErrAlreadySigned, err.Error())
	case payload.IsKind(err, payload.KindUnsupportedFormat):
		return model.NewError(model.ErrUnsupportedFormat, err.Error())
	case payload.IsKind(err, payload.KindOversizeContent):
		return model.NewError(model.ErrOversizeContent, err.Error())
	}
	return model.NewError(model.ErrInternal, err.Error())
}
