package rop_test

import "github.com/ib-77/ropnet/pkg/rop/failure"

const successValue = "success"

var (
	defaultError    = failure.New("default_error", "Error occured")
	unexpectedError = failure.New("unexpected_error", "Unexpected error occured")
)
