// Package types provides type definitions for structured data used throughout the resume-grader system.
package types

import "fmt"

// Role represents a target engineering role for resume grading.
type Role string

// Supported roles. Reference content is partitioned by role, so grading is
// only available for roles with ingested chunks.
const (
	RoleBackend   Role = "Backend Engineer"
	RoleFrontend  Role = "Frontend Engineer"
	RoleFullStack Role = "Full-Stack Engineer"
)

// Roles lists all supported roles in display order.
var Roles = []Role{RoleBackend, RoleFrontend, RoleFullStack}

// ParseRole validates a role string and returns the matching Role.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Level is a seniority tag on reference content. Only one level is ingested today.
type Level string

// LevelBeginner is the only supported level.
const LevelBeginner Level = "beginner"

// SeedQueriesByRole holds the fallback example-search queries used when a
// grading pass produced no usable weak bullets.
var SeedQueriesByRole = map[Role][]string{
	RoleBackend: {
		"reduce API latency with Redis caching",
		"improve database query performance with indexes",
		"design scalable REST APIs with authentication",
		"add observability with metrics and logging",
	},
	RoleFrontend: {
		"improve Lighthouse performance score",
		"add accessibility ARIA roles and keyboard navigation",
		"optimize React rendering with memoization",
		"improve UX with responsive Tailwind components",
	},
	RoleFullStack: {
		"own UI to API to DB feature with measurable result",
		"implement JWT auth end-to-end",
		"implement CI/CD pipeline reducing deploy time",
		"design database schema for feature launch with impact",
	},
}
