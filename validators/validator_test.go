package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email    string `json:"email" validate:"required,email"`
	Mobile   string `form:"mobileNumber" validate:"required"`
	Password string `json:"password" validate:"required,max=4"`
	Page     string `query:"page" validate:"omitempty,numeric"`
}

func TestCheckPasses(t *testing.T) {
	assert.Nil(t, Check(&sample{Email: "a@x.com", Mobile: "1", Password: "pw"}))
}

func TestCheckReportsRequestNames(t *testing.T) {
	errs := Check(&sample{Email: "nope", Password: "too long", Page: "x"})

	assert.Equal(t, map[string]string{
		"email":        "Invalid email!",
		"mobileNumber": "mobileNumber is required!",
		"password":     "password must be at most 4 characters long!",
		"page":         "page must be numeric!",
	}, errs)
}
