package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Nishanth262/portfolio/internal/sections"
)

const (
	colorBlue   = lipgloss.Color("#2563EB")
	colorPurple = lipgloss.Color("#8B5CF6")
	colorDim    = lipgloss.Color("#6B7280")
	colorRed    = lipgloss.Color("#EF4444")
)

type styles struct {
	header  lipgloss.Style
	title   lipgloss.Style
	dim     lipgloss.Style
	badge   lipgloss.Style
	tag     lipgloss.Style
	active  lipgloss.Style
	heart   lipgloss.Style
	divider string
}

// newStyles returns the terminal palette. Unstyled output uses empty styles so no escape codes are written.
func newStyles(styled bool) styles {
	if !styled {
		plain := lipgloss.NewStyle()
		return styles{header: plain, title: plain, dim: plain, badge: plain, tag: plain, active: plain, heart: plain, divider: strings.Repeat("-", 40)}
	}
	return styles{
		header:  lipgloss.NewStyle().Bold(true).Foreground(colorBlue),
		title:   lipgloss.NewStyle().Bold(true),
		dim:     lipgloss.NewStyle().Foreground(colorDim),
		badge:   lipgloss.NewStyle().Foreground(colorPurple),
		tag:     lipgloss.NewStyle().Foreground(colorBlue),
		active:  lipgloss.NewStyle().Bold(true).Underline(true).Foreground(colorBlue),
		heart:   lipgloss.NewStyle().Foreground(colorRed),
		divider: lipgloss.NewStyle().Foreground(colorDim).Render(strings.Repeat("─", 40)),
	}
}

func formatExperience(st styles, v sections.ExperienceView) string {
	var b strings.Builder
	b.WriteString(st.header.Render(strings.ToUpper(v.Heading)) + "\n\n")
	for _, e := range v.Items {
		fmt.Fprintf(&b, "  ● %s · %s\n", st.title.Render(e.Role), e.Company)
		fmt.Fprintf(&b, "    %s\n", st.badge.Render("["+e.Period+"]"))
		if e.Description != "" {
			fmt.Fprintf(&b, "    %s\n", e.Description)
		}
		if len(e.Technologies) > 0 {
			fmt.Fprintf(&b, "    %s\n", joinStyled(st.tag, e.Technologies, " · "))
		}
		b.WriteString("\n")
	}

	b.WriteString(st.header.Render("EDUCATION") + "\n\n")
	fmt.Fprintf(&b, "  %s\n", st.title.Render(v.Education.Degree))
	fmt.Fprintf(&b, "  %s %s\n\n", v.Education.Institution, st.dim.Render("("+v.Education.Period+")"))
	return b.String()
}

func formatProjects(st styles, v sections.ProjectsView) string {
	var b strings.Builder
	b.WriteString(st.header.Render(strings.ToUpper(v.Heading)) + "\n")
	b.WriteString(st.dim.Render(v.Intro) + "\n")

	if len(v.Filters) > 0 {
		labels := make([]string, len(v.Filters))
		for i, f := range v.Filters {
			if f.Active {
				labels[i] = st.active.Render("[" + f.Category + "]")
			} else {
				labels[i] = f.Category
			}
		}
		b.WriteString("filter: " + strings.Join(labels, "  ") + "\n")
	}
	b.WriteString("\n")

	for _, p := range v.Cards {
		fmt.Fprintf(&b, "  #%d %s\n", p.ID, st.title.Render(p.Title))
		if len(p.Tags) > 0 {
			fmt.Fprintf(&b, "     %s\n", joinStyled(st.tag, p.Tags, " · "))
		}
		if p.Description != "" {
			fmt.Fprintf(&b, "     %s\n", p.Description)
		}
		fmt.Fprintf(&b, "     %s %s\n", st.dim.Render("project:"), p.LiveURL)
		fmt.Fprintf(&b, "     %s %s\n\n", st.dim.Render("source: "), p.GitHubURL)
	}
	return b.String()
}

func formatFooter(st styles, v sections.FooterView) string {
	var b strings.Builder
	b.WriteString(st.divider + "\n")
	fmt.Fprintf(&b, "%s · %s\n", st.title.Render(v.Name), v.Headline)

	labels := make([]string, len(v.NavLinks))
	for i, l := range v.NavLinks {
		labels[i] = l.Label
	}
	if len(labels) > 0 {
		b.WriteString(st.dim.Render(strings.Join(labels, " · ")) + "\n")
	}

	fmt.Fprintf(&b, "© %d %s. All rights reserved.\n", v.Year, v.Name)
	if v.Credit != "" {
		b.WriteString(strings.Replace(v.Credit, "♥", st.heart.Render("♥"), 1) + "\n")
	}
	return b.String()
}

func joinStyled(style lipgloss.Style, items []string, sep string) string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = style.Render(s)
	}
	return strings.Join(out, sep)
}
