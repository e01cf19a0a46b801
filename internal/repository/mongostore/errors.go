package mongostore

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	apperrors "theboar/internal/errors"
)

func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return apperrors.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return apperrors.ErrDuplicateKey
	default:
		return err
	}
}
