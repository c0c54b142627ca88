package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateUserRequestValidate(t *testing.T) {
	req := &CreateUserRequest{Name: "Jane Doe", Email: "jane@example.com", Password: "hunter2hunter2"}
	assert.NoError(t, req.Validate())
}

func TestCreateUserRequestValidateRejectsShortPassword(t *testing.T) {
	req := &CreateUserRequest{Name: "Jane Doe", Email: "jane@example.com", Password: "short"}
	assert.Error(t, req.Validate())
}

func TestCreateUserRequestValidateRejectsBadEmail(t *testing.T) {
	req := &CreateUserRequest{Name: "Jane Doe", Email: "not-an-email", Password: "hunter2hunter2"}
	assert.Error(t, req.Validate())
}

func TestLoginRequestValidate(t *testing.T) {
	req := &LoginRequest{Email: "jane@example.com", Password: "hunter2"}
	assert.NoError(t, req.Validate())

	empty := &LoginRequest{}
	assert.Error(t, empty.Validate())
}
