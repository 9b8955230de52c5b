package authenticator

import (
	"testing"
	"time"

	"github.com/boostbuddies/backend/config"
	"github.com/stretchr/testify/require"
)

type tokenObj struct {
	ID string `json:"id"`
}

func Test_jwtTokenEngine_roundTrip(t *testing.T) {
	engine := NewTokenEngine[tokenObj](config.TokenConfigs{
		Secret:     "secret",
		Expiration: time.Minute,
	})

	token, err := engine.Generate("user1", tokenObj{ID: "user1"})
	require.NoError(t, err)

	obj, err := engine.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user1", obj.ID)
}

func Test_jwtTokenEngine_wrongSecret(t *testing.T) {
	engine := NewTokenEngine[tokenObj](config.TokenConfigs{
		Secret:     "secret",
		Expiration: time.Minute,
	})

	token, err := engine.Generate("user1", tokenObj{ID: "user1"})
	require.NoError(t, err)

	other := NewTokenEngine[tokenObj](config.TokenConfigs{
		Secret:     "another-secret",
		Expiration: time.Minute,
	})

	_, err = other.Verify(token)
	require.Error(t, err)
}

func Test_jwtTokenEngine_expired(t *testing.T) {
	engine := NewTokenEngine[tokenObj](config.TokenConfigs{
		Secret:     "secret",
		Expiration: -time.Minute,
	})

	token, err := engine.Generate("user1", tokenObj{ID: "user1"})
	require.NoError(t, err)

	_, err = engine.Verify(token)
	require.Error(t, err)
}
