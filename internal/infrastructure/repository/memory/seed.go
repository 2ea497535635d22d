package memory

import (
	"time"

	"github.com/openpitch/pitchside/internal/domain/league"
	"github.com/openpitch/pitchside/internal/domain/team"
	"github.com/openpitch/pitchside/internal/domain/user"
)

const (
	UserIDAlex   = "user-alex"
	UserIDBillie = "user-billie"
	UserIDCasey  = "user-casey"

	TeamIDRovers    = "team-rovers"
	TeamIDWanderers = "team-wanderers"

	LeagueIDSunday = "league-sunday"
)

var seedTime = time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)

func SeedUsers() []user.User {
	return []user.User{
		{ID: UserIDAlex, Name: "Alex Morgan", Image: "https://img.example/alex.png", CreatedAt: seedTime},
		{ID: UserIDBillie, Name: "Billie Reyes", Image: "https://img.example/billie.png", CreatedAt: seedTime},
		{ID: UserIDCasey, Name: "Casey Nand", Image: "https://img.example/casey.png", CreatedAt: seedTime},
	}
}

func SeedTeams() []team.Team {
	leagueID := LeagueIDSunday
	return []team.Team{
		{ID: TeamIDRovers, Name: "Riverside Rovers", ManagerID: UserIDAlex, LeagueID: &leagueID, CreatedAt: seedTime},
		{ID: TeamIDWanderers, Name: "Westside Wanderers", ManagerID: UserIDBillie, CreatedAt: seedTime},
	}
}

func SeedLeagues() []league.League {
	managerID := UserIDAlex
	return []league.League{
		{ID: LeagueIDSunday, Name: "Sunday Rec League", Description: "Casual sunday fixtures", ManagerID: &managerID, CreatedAt: seedTime},
	}
}
