package domain

import (
	"strings"
	"time"
)

// CrewRoleType is the part a crew member plays in a movie.
type CrewRoleType string

const (
	CrewRoleDirector        CrewRoleType = "DIRECTOR"
	CrewRoleProducer        CrewRoleType = "PRODUCER"
	CrewRoleWriter          CrewRoleType = "WRITER"
	CrewRoleActor           CrewRoleType = "ACTOR"
	CrewRoleComposer        CrewRoleType = "COMPOSER"
	CrewRoleCinematographer CrewRoleType = "CINEMATOGRAPHER"
	CrewRoleEditor          CrewRoleType = "EDITOR"
)

// ValidateCrewRole enforces the character name rule: actors need one, every
// other role must not carry one.
func ValidateCrewRole(role CrewRoleType, characterName string) error {
	blank := strings.TrimSpace(characterName) == ""
	if role == CrewRoleActor {
		if blank {
			return ErrCharacterNameRequired
		}
		return nil
	}
	if !blank {
		return ErrCharacterNameNotAllowed
	}
	return nil
}

// DateOnly truncates t to midnight UTC. Birth and release dates are stored
// this way so equality lookups are stable across drivers.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
