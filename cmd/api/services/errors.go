package services

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when the requested document does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidID is returned when a path/query id is not a valid ObjectID hex.
var ErrInvalidID = errors.New("invalid id")

// wrapNotFound은 드라이버의 no-documents 오류를 서비스 계층 오류로 바꾼다.
func wrapNotFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
