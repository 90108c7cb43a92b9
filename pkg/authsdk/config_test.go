package authsdk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/cognitoauth/pkg/authsdk"
	"github.com/aussiebroadwan/cognitoauth/pkg/autherr"
	"github.com/aussiebroadwan/cognitoauth/pkg/authsdk/authsdktest"
)

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, testConfig().Validate())

	err := authsdk.Config{UserPoolID: "pool"}.Validate()
	require.ErrorIs(t, err, autherr.ErrConfiguration)
	require.EqualError(t, err, "configuration: missing region, client id, client secret")
}

func TestNewClientRejectsBadConfiguration(t *testing.T) {
	t.Parallel()

	_, err := authsdk.NewClient(authsdk.Config{}, &authsdktest.Provider{})
	require.Equal(t, autherr.KindConfiguration, autherr.KindOf(err))

	_, err = authsdk.NewClient(testConfig(), nil)
	require.ErrorIs(t, err, authsdk.ErrNilProvider)
}
