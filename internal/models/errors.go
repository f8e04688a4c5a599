package models

import (
	"errors"
)

var (
	ErrGeneral             = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound    = errors.New("there is no")
	ErrProyectoIDNotUnique = errors.New("the dataset contains more than one project with the same id")
)
