package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Pranavrh53/skill-exchange-platform/internal/client/models"
)

func skillNames(skills []models.Skill) string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return strings.Join(names, ", ")
}

// renderCandidates prints the engine's current view. A failed fetch keeps
// the previous list visible, so the error is shown alongside it rather
// than instead of it.
func (a *App) renderCandidates() {
	if err := a.engine.Err(); err != nil && !errorsIsAuthExpired(err) {
		fmt.Fprintf(a.out, "Last fetch failed (%s); showing previous results.\n", err.Error())
	}

	if f := a.engine.Filter(); !f.IsZero() {
		fmt.Fprintf(a.out, "Filter: skill=%q location=%q\n", f.SkillID, f.Location)
	}

	candidates := a.engine.Candidates()
	if len(candidates) == 0 {
		fmt.Fprintln(a.out, "No matches.")
		return
	}

	for i, c := range candidates {
		location := c.User.Location
		if location == "" {
			location = "location not specified"
		}
		fmt.Fprintf(a.out, "%d. %s (%s)\n", i+1, c.User.Name, location)
		fmt.Fprintf(a.out, "   offers: %s\n", skillNames(c.OfferedSkills))
		fmt.Fprintf(a.out, "   wants:  %s\n", skillNames(c.RequestedSkills))
		for j, ex := range c.PossibleExchanges {
			fmt.Fprintf(a.out, "   %d) give %s <-> get %s\n", j+1, ex.OfferedSkillName, ex.RequestedSkillName)
		}
	}
}

// Matches fetches with the current filter and renders the result.
func (a *App) Matches(ctx context.Context) error {
	err := a.engine.Refresh(ctx)
	if err != nil {
		a.report(ctx, err)
	}
	a.renderCandidates()
	return err
}

// Filter prompts for a skill id and location and refetches. Empty answers
// mean "any".
func (a *App) Filter(ctx context.Context) error {
	skillID, err := GetSimpleText(a.reader, "Filter by skill id (empty for any)", a.out)
	if err != nil {
		return err
	}
	location, err := GetSimpleText(a.reader, "Filter by location (empty for any)", a.out)
	if err != nil {
		return err
	}

	if err := a.engine.SetFilter(ctx, models.Filter{SkillID: skillID, Location: location}); err != nil {
		a.report(ctx, err)
		a.renderCandidates()
		return err
	}
	a.renderCandidates()
	return nil
}

// Refresh refetches with the current filter.
func (a *App) Refresh(ctx context.Context) error {
	return a.Matches(ctx)
}

// Barter initiates a barter session: "barter <match#> <exchange#>" using
// the numbers from the last rendered match list.
func (a *App) Barter(ctx context.Context, args []string) error {
	if len(args) != 2 {
		fmt.Fprintln(a.out, "Usage: barter <match#> <exchange#>")
		return nil
	}

	candidates := a.engine.Candidates()

	ci, err := strconv.Atoi(args[0])
	if err != nil || ci < 1 || ci > len(candidates) {
		fmt.Fprintln(a.out, "No such match; run 'matches' first.")
		return nil
	}
	candidate := candidates[ci-1]

	ei, err := strconv.Atoi(args[1])
	if err != nil || ei < 1 || ei > len(candidate.PossibleExchanges) {
		fmt.Fprintln(a.out, "No such exchange for that match.")
		return nil
	}
	exchange := candidate.PossibleExchanges[ei-1]

	if err := a.workflow.Initiate(ctx, candidate, exchange.OfferedSkillID.String(), exchange.RequestedSkillID.String()); err != nil {
		a.report(ctx, err)
		return err
	}

	fmt.Fprintf(a.out, "Barter session initiated with %s: you give %s, you get %s.\n",
		candidate.User.Name, exchange.OfferedSkillName, exchange.RequestedSkillName)
	return nil
}
