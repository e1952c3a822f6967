package service

import "errors"

var (
	ErrGameNotFound     = errors.New("game not found")
	ErrInvalidSquare    = errors.New("invalid square")
	ErrInvalidPromotion = errors.New("invalid promotion piece")
)
