package cli

import (
	"context"
	"fmt"
	"strings"
)

// Suspects lists the suspects of a case.
func (a *App) Suspects(ctx context.Context, caseID string) error {
	suspects, err := a.cases.Suspects(ctx, caseID)
	if err != nil {
		printlnFn("Could not list suspects:", err.Error())
		return err
	}

	for _, s := range suspects {
		var marks []string
		if s.IsPrimarySuspect {
			marks = append(marks, "primary")
		}
		if s.IsCleared {
			marks = append(marks, "cleared")
		}
		suffix := ""
		if len(marks) > 0 {
			suffix = " [" + strings.Join(marks, ", ") + "]"
		}
		printlnFn(fmt.Sprintf("%s  %s, %d  danger: %s%s", s.ID, s.FullName, s.Age, s.DangerLevel, suffix))
	}
	return nil
}

// SuspectDetail prints the dossier of one suspect.
func (a *App) SuspectDetail(ctx context.Context, suspectID string) error {
	d, err := a.cases.SuspectDetail(ctx, suspectID)
	if err != nil {
		printlnFn("Could not load suspect:", err.Error())
		return err
	}

	b := d.BasicInfo
	name := b.FullName
	if b.Alias != nil {
		name = fmt.Sprintf("%s (alias %q)", name, *b.Alias)
	}
	printlnFn(name)
	printlnFn(fmt.Sprintf("  %s, %d, %s, %s", b.Gender, b.Age, b.Nationality, b.Occupation))
	printlnFn(fmt.Sprintf("  residence: %s, %s", b.ResidenceCity, b.ResidenceDistrict))

	r := d.CaseRelation
	printlnFn(fmt.Sprintf("  relation to victim: %s", r.RelationToVictim))
	printlnFn(fmt.Sprintf("  alibi: %s (%s)", r.AlibiStatement, r.AlibiStatus))
	for _, s := range r.Suspicions {
		printlnFn("  suspicion: " + s)
	}

	risk := d.RiskAssessment
	printlnFn(fmt.Sprintf("  danger: %s  cooperation: %s  flight risk: %s",
		risk.DangerLevel, risk.CooperationLevel, risk.FlightRisk))

	if d.IsPrimarySuspect {
		printlnFn("  ** primary suspect **")
	}
	if d.IsCleared {
		printlnFn("  (cleared)")
	}
	return nil
}
