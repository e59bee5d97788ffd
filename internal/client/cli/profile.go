package cli

import (
	"context"
	"fmt"
	"strings"
)

// Skills lists the skills known to the backend.
func (a *App) Skills(ctx context.Context) error {
	skills, err := a.gateway.Skills(ctx)
	if err != nil {
		a.report(ctx, err)
		return err
	}
	if len(skills) == 0 {
		fmt.Fprintln(a.out, "No skills available.")
		return nil
	}
	for _, s := range skills {
		fmt.Fprintf(a.out, "%s  %s\n", s.ID, s.Name)
	}
	return nil
}

// Who lists users offering a given skill: "who <skill-id>".
func (a *App) Who(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: who <skill-id>")
		return nil
	}

	users, err := a.gateway.UsersBySkill(ctx, args[0])
	if err != nil {
		a.report(ctx, err)
		return err
	}
	if len(users) == 0 {
		fmt.Fprintln(a.out, "Nobody offers that skill.")
		return nil
	}
	for _, u := range users {
		location := u.Location
		if location == "" {
			location = "location not specified"
		}
		fmt.Fprintf(a.out, "%s (%s)\n", u.Name, location)
		fmt.Fprintf(a.out, "   offers: %s\n", skillNames(u.OfferedSkills))
		fmt.Fprintf(a.out, "   wants:  %s\n", skillNames(u.RequestedSkills))
	}
	return nil
}

// Profile shows the authenticated user's own profile.
func (a *App) Profile(ctx context.Context) error {
	p, err := a.gateway.Profile(ctx)
	if err != nil {
		a.report(ctx, err)
		return err
	}

	fmt.Fprintf(a.out, "Name:         %s\n", p.Name)
	fmt.Fprintf(a.out, "Location:     %s\n", p.Location)
	fmt.Fprintf(a.out, "Bio:          %s\n", p.Bio)
	fmt.Fprintf(a.out, "Availability: %s\n", p.Availability)
	fmt.Fprintf(a.out, "Offers:       %s\n", strings.Join(p.OfferedSkills, ", "))
	fmt.Fprintf(a.out, "Wants:        %s\n", strings.Join(p.RequiredSkills, ", "))
	return nil
}

// EditProfile updates the profile field by field; empty answers keep the
// current value.
func (a *App) EditProfile(ctx context.Context) error {
	p, err := a.gateway.Profile(ctx)
	if err != nil {
		a.report(ctx, err)
		return err
	}

	prompt := func(label, current string) (string, error) {
		answer, err := GetSimpleText(a.reader, fmt.Sprintf("%s [%s]", label, current), a.out)
		if err != nil {
			return "", err
		}
		if answer == "" {
			return current, nil
		}
		return answer, nil
	}

	if p.Location, err = prompt("Location", p.Location); err != nil {
		return err
	}
	if p.Bio, err = prompt("Bio", p.Bio); err != nil {
		return err
	}
	if p.Availability, err = prompt("Availability", p.Availability); err != nil {
		return err
	}

	offered, err := prompt("Offered skills (comma separated)", strings.Join(p.OfferedSkills, ", "))
	if err != nil {
		return err
	}
	p.OfferedSkills = splitSkills(offered)

	required, err := prompt("Wanted skills (comma separated)", strings.Join(p.RequiredSkills, ", "))
	if err != nil {
		return err
	}
	p.RequiredSkills = splitSkills(required)

	if err := a.gateway.UpdateProfile(ctx, *p); err != nil {
		a.report(ctx, err)
		return err
	}
	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}

func splitSkills(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
