package authutils

import (
	"hr-pipeline-backend/models"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestActorFromClaims(t *testing.T) {
	t.Run(`token round trip`, func(t *testing.T) {
		tokenString, err := GetToken("secret", "user-1", models.Capabilities{models.CapabilityRecruiter, models.CapabilityAdmin}, time.Hour)
		require.NoError(t, err)

		claims := jwt.MapClaims{}
		_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte("secret"), nil
		})
		require.NoError(t, err)

		actor := ActorFromClaims(claims)
		require.Equal(t, "user-1", actor.ID)
		require.True(t, actor.Has(models.CapabilityRecruiter))
		require.True(t, actor.Has(models.CapabilityAdmin))
		require.False(t, actor.Has(models.CapabilityApplicant))
	})

	t.Run(`comma separated caps, unknown skipped`, func(t *testing.T) {
		actor := ActorFromClaims(jwt.MapClaims{
			ClaimSubject:      "user-2",
			ClaimCapabilities: "applicant, superuser,interviewer",
		})
		require.Equal(t, models.Capabilities{models.CapabilityApplicant, models.CapabilityInterviewer}, actor.Capabilities)
	})

	t.Run(`empty claims`, func(t *testing.T) {
		actor := ActorFromClaims(jwt.MapClaims{})
		require.Empty(t, actor.ID)
		require.Empty(t, actor.Capabilities)
	})
}
