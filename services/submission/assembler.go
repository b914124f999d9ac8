// Package submission turns a validated draft into the backend payload and
// delivers it.
package submission

import (
	"context"
	"fmt"
	"strings"

	"sportify/models"
	"sportify/services/slots"
)

// Assemble builds the submission payload from a draft at the confirmation
// step. Province and ward codes are resolved to their directory labels.
// Assemble keeps no state between calls.
func Assemble(ctx context.Context, d models.Draft, locations LocationResolver) (models.SubmissionPayload, error) {
	if d.Step != models.StepConfirmation {
		return models.SubmissionPayload{}, models.Reject(models.RejectNotAtConfirmation, "draft is at step %s", d.Step)
	}

	province, err := locations.ResolveProvince(ctx, d.Complex.Province)
	if err != nil {
		return models.SubmissionPayload{}, fmt.Errorf("resolve province %s: %w", d.Complex.Province, err)
	}
	ward, err := locations.ResolveWard(ctx, d.Complex.Province, d.Complex.Ward)
	if err != nil {
		return models.SubmissionPayload{}, fmt.Errorf("resolve ward %s: %w", d.Complex.Ward, err)
	}

	opening, closing := d.Complex.Hours()
	payload := models.SubmissionPayload{
		Complex: models.ComplexPayload{
			Name:        strings.TrimSpace(d.Complex.Name),
			Street:      strings.TrimSpace(d.Complex.Street),
			Province:    province.Label,
			Ward:        ward.Label,
			Phone:       strings.TrimSpace(d.Complex.Phone),
			OpeningTime: opening.WireString(),
			ClosingTime: closing.WireString(),
			Description: d.Complex.Description,
		},
		Fields: make([]models.FieldPayload, 0, len(d.Fields)),
	}

	for _, f := range d.Fields {
		fp := models.FieldPayload{
			Name:            strings.TrimSpace(f.Name),
			FieldType:       f.FieldType,
			Description:     f.Description,
			CustomTimeSlots: make([]models.SlotPayload, 0, len(f.TimeSlots)),
		}
		for _, s := range slots.Sort(f.TimeSlots) {
			fp.CustomTimeSlots = append(fp.CustomTimeSlots, models.SlotPayload{
				StartTime: s.Start.WireString(),
				EndTime:   s.End.WireString(),
				Price:     s.Price,
			})
		}
		payload.Fields = append(payload.Fields, fp)
	}
	return payload, nil
}
