package repositories

import (
	"squadup/internal/testutil"
	"squadup/pkg/database/models"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUserTestData(t *testing.T, db *gorm.DB) {
	// Clean up existing data
	db.Exec("TRUNCATE TABLE users CASCADE")

	users := []*models.User{
		{ID: "11111111-1111-1111-1111-111111111101", DiscordID: "d-requester", Name: "Requester", Game: testutil.Ptr("apex"), Rank: testutil.Ptr("gold"), Platform: testutil.Ptr("pc"), Playstyle: testutil.Ptr("competitive"), Region: testutil.Ptr("NA")},
		{ID: "11111111-1111-1111-1111-111111111102", DiscordID: "d-silver", Name: "SilverApex", Game: testutil.Ptr("apex"), Rank: testutil.Ptr("silver"), Platform: testutil.Ptr("pc"), Playstyle: testutil.Ptr("competitive"), Region: testutil.Ptr("NA")},
		{ID: "11111111-1111-1111-1111-111111111103", DiscordID: "d-gold", Name: "GoldApex", Game: testutil.Ptr("apex"), Rank: testutil.Ptr("gold"), Platform: testutil.Ptr("pc"), Playstyle: testutil.Ptr("casual"), Region: testutil.Ptr("EU")},
		{ID: "11111111-1111-1111-1111-111111111104", DiscordID: "d-platinum", Name: "PlatApex", Game: testutil.Ptr("apex"), Rank: testutil.Ptr("platinum"), Platform: testutil.Ptr("xbox"), Playstyle: testutil.Ptr("competitive"), Region: testutil.Ptr("OCE")},
		{ID: "11111111-1111-1111-1111-111111111105", DiscordID: "d-diamond", Name: "DiamondApex", Game: testutil.Ptr("apex"), Rank: testutil.Ptr("diamond"), Platform: testutil.Ptr("pc"), Playstyle: testutil.Ptr("competitive"), Region: testutil.Ptr("NA")},
		{ID: "11111111-1111-1111-1111-111111111106", DiscordID: "d-fortnite", Name: "FortnitePlayer", Game: testutil.Ptr("fortnite"), Rank: testutil.Ptr("gold"), Platform: testutil.Ptr("pc"), Playstyle: testutil.Ptr("competitive"), Region: testutil.Ptr("NA")},
		{ID: "11111111-1111-1111-1111-111111111107", DiscordID: "d-apac", Name: "ApacPlayer", Game: testutil.Ptr("apex"), Rank: testutil.Ptr("gold"), Platform: testutil.Ptr("pc"), Playstyle: testutil.Ptr("casual"), Region: testutil.Ptr("APAC")},
		{ID: "11111111-1111-1111-1111-111111111108", DiscordID: "d-latam", Name: "LatamPlayer", Game: testutil.Ptr("apex"), Rank: testutil.Ptr("gold"), Platform: testutil.Ptr("pc"), Playstyle: testutil.Ptr("casual"), Region: testutil.Ptr("LATAM")},
		{ID: "11111111-1111-1111-1111-111111111109", DiscordID: "d-empty", Name: "NoPrefs"},
	}

	for _, user := range users {
		err := db.Create(user).Error
		require.NoError(t, err)
	}
}
