package newsletter

import (
	"talent-park-backend/models"
	dbmodels "talent-park-backend/models/db"
)

// Match returns the users to notify about a job in the given niche. A user
// matches when the niche exactly equals one of its preference slots; only
// job seekers carry preferences, and nobody appears twice.
func Match(niche string, users []dbmodels.User) []dbmodels.User {
	recipients := make([]dbmodels.User, 0)
	seen := make(map[string]bool)
	for _, user := range users {
		if user.Role != models.JobSeekerRole || seen[user.ID] {
			continue
		}
		for _, preference := range user.Niches {
			if preference == niche {
				recipients = append(recipients, user)
				seen[user.ID] = true
				break
			}
		}
	}
	return recipients
}
