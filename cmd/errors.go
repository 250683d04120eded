package cmd

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	convertValidationCode = "CONVERT_VALIDATION_FAILED"
	convertSourceCode     = "CONVERT_SOURCE_FAILED"
	convertExportCode     = "CONVERT_EXPORT_FAILED"
	convertCanceledCode   = "CONVERT_CANCELED"
)

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid convert options").
		WithTextCode(convertValidationCode)
}

func wrapSourceError(err error) error {
	return wrapCommandError(err, "loading documents failed", convertSourceCode)
}

func wrapExportError(err error) error {
	return wrapCommandError(err, "exporting documents failed", convertExportCode)
}

func wrapCommandError(err error, message, code string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return goerrors.Wrap(err, goerrors.CategoryCommand, "convert cancelled").
			WithTextCode(convertCanceledCode)
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, message).
		WithTextCode(code)
}
