package interpreter_mocks

//go:generate mockgen -source=../interpreter.go -destination=interpreter_mocks.go -package=interpreter_mocks

// This file contains the go:generate directive to generate mocks for the interpreter interface.
// To regenerate the mocks, run:
//   go generate ./internal/interpreter/interpreter_mocks
