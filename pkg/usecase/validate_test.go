package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/AndresMoros/firestore-backup-manager/pkg/usecase"
)

func TestValidate_Execute(t *testing.T) {
	t.Run("well-formed backup", func(t *testing.T) {
		data := []byte(`[
  {"docId": "a", "name": "Ada", "age": 36},
  {"docId": "b", "name": "Grace"}
]`)

		report, err := usecase.NewValidate(testLogger()).Execute(data)
		gt.NoError(t, err)
		gt.Equal(t, report.Records, 2)
		gt.Equal(t, report.TopLevelFields, 2)
		gt.Equal(t, report.OK(), true)
	})

	t.Run("records missing docId are reported by index", func(t *testing.T) {
		data := []byte(`[{"docId": "a"}, {"name": "x"}, {"docId": "c"}]`)

		report, err := usecase.NewValidate(testLogger()).Execute(data)
		gt.NoError(t, err)
		gt.Equal(t, report.OK(), false)
		gt.Equal(t, report.MissingDocID, []int{1})
	})

	t.Run("malformed file errors", func(t *testing.T) {
		_, err := usecase.NewValidate(testLogger()).Execute([]byte("nope"))
		gt.Error(t, err)
	})
}
