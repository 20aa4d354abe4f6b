package newsletter

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"talent-park-backend/models"
	dbmodels "talent-park-backend/models/db"
)

func TestMatch(t *testing.T) {
	seeker := func(id string, niches ...string) dbmodels.User {
		rec := dbmodels.User{
			Role:   models.JobSeekerRole,
			Niches: pq.StringArray(niches),
		}
		rec.ID = id
		return rec
	}

	t.Run(`any slot matches check`, func(t *testing.T) {
		users := []dbmodels.User{
			seeker("u1", "Backend", "Frontend", "DevOps"),
			seeker("u2", "Design", "Backend", "QA"),
			seeker("u3", "Design", "QA", "Backend"),
		}
		got := Match("Backend", users)
		require.Len(t, got, 3)
	})

	t.Run(`exact equality only check`, func(t *testing.T) {
		users := []dbmodels.User{
			seeker("u1", "backend"),
			seeker("u2", "Backend Engineering"),
			seeker("u3", "Backend"),
		}
		got := Match("Backend", users)
		require.Len(t, got, 1)
		require.Equal(t, "u3", got[0].ID)
	})

	t.Run(`employers never match check`, func(t *testing.T) {
		employer := dbmodels.User{Role: models.EmployerRole, Niches: pq.StringArray{"Backend"}}
		employer.ID = "e1"
		got := Match("Backend", []dbmodels.User{employer, seeker("u1", "Backend")})
		require.Len(t, got, 1)
		require.Equal(t, "u1", got[0].ID)
	})

	t.Run(`no duplicate recipients check`, func(t *testing.T) {
		users := []dbmodels.User{
			seeker("u1", "Backend", "Backend", "Backend"),
		}
		got := Match("Backend", users)
		require.Len(t, got, 1)
	})

	t.Run(`no recipients check`, func(t *testing.T) {
		got := Match("Embedded", []dbmodels.User{seeker("u1", "Backend")})
		require.NotNil(t, got)
		require.Empty(t, got)
	})
}
