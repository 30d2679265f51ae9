package usecase

import (
	"log/slog"

	"github.com/AndresMoros/firestore-backup-manager/pkg/domain/model"
)

// Validate inspects a backup file without touching the remote database
type Validate struct {
	logger *slog.Logger
}

// NewValidate creates a new Validate use case
func NewValidate(logger *slog.Logger) *Validate {
	return &Validate{logger: logger}
}

// Execute parses the backup data and reports record count, distinct top-level
// field count and any records missing a docId. Parse failure is the only
// error path.
func (v *Validate) Execute(data []byte) (*model.ValidationReport, error) {
	backup, err := model.ParseBackup(data)
	if err != nil {
		return nil, err
	}

	report := &model.ValidationReport{Records: len(backup)}

	fields := map[string]struct{}{}
	for i, doc := range backup {
		if doc.DocID() == "" {
			report.MissingDocID = append(report.MissingDocID, i)
		}
		for name := range doc {
			if name != model.DocIDField {
				fields[name] = struct{}{}
			}
		}
	}
	report.TopLevelFields = len(fields)

	if !report.OK() {
		v.logger.Warn("Backup records missing docId",
			slog.Int("count", len(report.MissingDocID)))
	}

	return report, nil
}
