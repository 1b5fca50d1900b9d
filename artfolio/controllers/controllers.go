package controllers

import (
	"artfolio/artfolio/sources/store"
	"artfolio/artfolio/utils/logging"

	"go.uber.org/zap"
)

// fail logs err on the error log and tags it with op. Not-found is not logged.
func fail(op string, err error) error {
	if err == nil {
		return nil
	}
	err = store.Wrap(op, err)
	if store.KindOf(err) != store.KindNotFound {
		logging.ErrorLogger.Error("operation failed",
			zap.String("op", op),
			zap.String("kind", string(store.KindOf(err))),
			zap.Error(err),
		)
	}
	return err
}

func strPtr(s string) *string {
	return &s
}

// optional turns "" into nil.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
