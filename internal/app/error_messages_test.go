package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/nim-client/models"
)

func TestDescribeErrorCode(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{code: models.ErrorCodeLoginFailed, want: MsgInvalidLoginPassword},
		{code: "NotLoggedIn", want: MsgUnknownServerError},
		{code: models.ErrorCodeAPINotSpecified, want: MsgAPINotSpecified},
		{code: models.ErrorCodeAPINotDefined, want: MsgAPINotDefined},
		{code: "SomethingElse", want: MsgUnknownServerError},
		{code: "", want: MsgUnknownServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, DescribeErrorCode(tt.code))
		})
	}
}
