package xlsexport

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	applicationapimodels "talent-park-backend/models/api/application"
)

func TestExportApplicationList(t *testing.T) {
	t.Run(`rows written check`, func(t *testing.T) {
		NewHandler()
		list := []applicationapimodels.ApplicationView{
			{
				JobSeekerName:    "Sam Carter",
				JobSeekerEmail:   "sam@x.io",
				JobSeekerPhone:   "+491700000000",
				JobSeekerAddress: "Berlin",
				JobTitle:         "Go Developer",
				CoverLetter:      "I want this job",
				ResumeURL:        "http://s3/resumes/u1/cv.pdf",
				MatchScore:       80,
			},
		}
		buf, err := Instance.ExportApplicationList(list)
		require.Nil(t, err)
		require.NotZero(t, buf.Len())

		f, err := excelize.OpenReader(buf)
		require.Nil(t, err)
		defer f.Close()

		rows, err := f.GetRows("Applications")
		require.Nil(t, err)
		require.Len(t, rows, 2)
		require.Equal(t, "Name", rows[0][0])
		require.Equal(t, "Sam Carter", rows[1][0])
		require.Equal(t, "Go Developer", rows[1][3])
	})

	t.Run(`empty list still has header check`, func(t *testing.T) {
		NewHandler()
		buf, err := Instance.ExportApplicationList(nil)
		require.Nil(t, err)

		f, err := excelize.OpenReader(buf)
		require.Nil(t, err)
		defer f.Close()

		rows, err := f.GetRows("Applications")
		require.Nil(t, err)
		require.Len(t, rows, 1)
	})
}
