package httpapi

import (
	"context"
	"time"

	"github.com/openpitch/pitchside/internal/domain/game"
	"github.com/openpitch/pitchside/internal/domain/invite"
	"github.com/openpitch/pitchside/internal/domain/league"
	"github.com/openpitch/pitchside/internal/domain/post"
	"github.com/openpitch/pitchside/internal/domain/team"
	"github.com/openpitch/pitchside/internal/domain/user"
	"github.com/openpitch/pitchside/internal/usecase"
)

type userSummaryDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

type userProfileDTO struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Image          string    `json:"image,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	FollowerCount  int       `json:"followerCount"`
	FollowingCount int       `json:"followingCount"`
	FollowedByMe   bool      `json:"followedByMe"`
}

type teamDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"image,omitempty"`
	Description string    `json:"description,omitempty"`
	ManagerID   string    `json:"managerId"`
	LeagueID    *string   `json:"leagueId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type teamDetailDTO struct {
	Team        teamDTO          `json:"team"`
	Players     []userSummaryDTO `json:"players"`
	PlayerCount int              `json:"playerCount"`
}

type leagueDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ManagerID   *string   `json:"managerId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type leagueDetailDTO struct {
	League    leagueDTO `json:"league"`
	Teams     []teamDTO `json:"teams"`
	TeamCount int       `json:"teamCount"`
}

type gameDTO struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	HomeTeamID string    `json:"homeTeamId"`
	AwayTeamID string    `json:"awayTeamId"`
	HomeScore  *int      `json:"homeScore,omitempty"`
	AwayScore  *int      `json:"awayScore,omitempty"`
	LeagueID   *string   `json:"leagueId,omitempty"`
	Friendly   bool      `json:"friendly"`
	CreatedAt  time.Time `json:"createdAt"`
}

type postDTO struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	Type       string    `json:"type"`
	UserID     string    `json:"userId"`
	HomeTeamID *string   `json:"homeTeamId,omitempty"`
	AwayTeamID *string   `json:"awayTeamId,omitempty"`
	HomeScore  *int      `json:"homeScore,omitempty"`
	AwayScore  *int      `json:"awayScore,omitempty"`
	LeagueID   *string   `json:"leagueId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type feedItemDTO struct {
	Post      postDTO        `json:"post"`
	Author    userSummaryDTO `json:"author"`
	LikeCount int            `json:"likeCount"`
	LikedByMe bool           `json:"likedByMe"`
}

type feedPageDTO struct {
	Items      []feedItemDTO `json:"items"`
	NextCursor string        `json:"nextCursor,omitempty"`
}

type inviteDTO struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"teamId"`
	PlayerID  string    `json:"playerId"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type likeToggleDTO struct {
	AddedLike bool `json:"addedLike"`
}

type followToggleDTO struct {
	Following bool `json:"following"`
}

func userSummaryToDTO(v user.Summary) userSummaryDTO {
	return userSummaryDTO{ID: v.ID, Name: v.Name, Image: v.Image}
}

func userProfileToDTO(ctx context.Context, v user.Profile) userProfileDTO {
	ctx, span := startSpan(ctx, "httpapi.userProfileToDTO")
	defer span.End()

	return userProfileDTO{
		ID:             v.User.ID,
		Name:           v.User.Name,
		Image:          v.User.Image,
		CreatedAt:      v.User.CreatedAt,
		FollowerCount:  v.FollowerCount,
		FollowingCount: v.FollowingCount,
		FollowedByMe:   v.FollowedByMe,
	}
}

func teamToDTO(ctx context.Context, v team.Team) teamDTO {
	ctx, span := startSpan(ctx, "httpapi.teamToDTO")
	defer span.End()

	return teamDTO{
		ID:          v.ID,
		Name:        v.Name,
		Image:       v.Image,
		Description: v.Description,
		ManagerID:   v.ManagerID,
		LeagueID:    v.LeagueID,
		CreatedAt:   v.CreatedAt,
	}
}

func teamDetailToDTO(ctx context.Context, v usecase.TeamDetails) teamDetailDTO {
	ctx, span := startSpan(ctx, "httpapi.teamDetailToDTO")
	defer span.End()

	players := make([]userSummaryDTO, 0, len(v.Players))
	for _, p := range v.Players {
		players = append(players, userSummaryToDTO(p))
	}

	return teamDetailDTO{
		Team:        teamToDTO(ctx, v.Team),
		Players:     players,
		PlayerCount: v.PlayerCount,
	}
}

func leagueToDTO(ctx context.Context, v league.League) leagueDTO {
	ctx, span := startSpan(ctx, "httpapi.leagueToDTO")
	defer span.End()

	return leagueDTO{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		ManagerID:   v.ManagerID,
		CreatedAt:   v.CreatedAt,
	}
}

func leagueDetailToDTO(ctx context.Context, v usecase.LeagueDetails) leagueDetailDTO {
	ctx, span := startSpan(ctx, "httpapi.leagueDetailToDTO")
	defer span.End()

	teams := make([]teamDTO, 0, len(v.Teams))
	for _, t := range v.Teams {
		teams = append(teams, teamToDTO(ctx, t))
	}

	return leagueDetailDTO{
		League:    leagueToDTO(ctx, v.League),
		Teams:     teams,
		TeamCount: v.TeamCount,
	}
}

func gameToDTO(ctx context.Context, v game.Game) gameDTO {
	ctx, span := startSpan(ctx, "httpapi.gameToDTO")
	defer span.End()

	return gameDTO{
		ID:         v.ID,
		Date:       v.Date,
		HomeTeamID: v.HomeTeamID,
		AwayTeamID: v.AwayTeamID,
		HomeScore:  v.HomeScore,
		AwayScore:  v.AwayScore,
		LeagueID:   v.LeagueID,
		Friendly:   v.Friendly,
		CreatedAt:  v.CreatedAt,
	}
}

func postToDTO(ctx context.Context, v post.Post) postDTO {
	ctx, span := startSpan(ctx, "httpapi.postToDTO")
	defer span.End()

	return postDTO{
		ID:         v.ID,
		Content:    v.Content,
		Type:       string(v.Type),
		UserID:     v.UserID,
		HomeTeamID: v.HomeTeamID,
		AwayTeamID: v.AwayTeamID,
		HomeScore:  v.HomeScore,
		AwayScore:  v.AwayScore,
		LeagueID:   v.LeagueID,
		CreatedAt:  v.CreatedAt,
	}
}

func feedPageToDTO(ctx context.Context, page post.Page) feedPageDTO {
	ctx, span := startSpan(ctx, "httpapi.feedPageToDTO")
	defer span.End()

	items := make([]feedItemDTO, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, feedItemDTO{
			Post:      postToDTO(ctx, item.Post),
			Author:    userSummaryToDTO(item.Author),
			LikeCount: item.LikeCount,
			LikedByMe: item.LikedByMe,
		})
	}

	return feedPageDTO{
		Items:      items,
		NextCursor: encodeCursor(page.NextCursor),
	}
}

func inviteToDTO(ctx context.Context, v invite.Invite) inviteDTO {
	ctx, span := startSpan(ctx, "httpapi.inviteToDTO")
	defer span.End()

	return inviteDTO{
		ID:        v.ID,
		TeamID:    v.TeamID,
		PlayerID:  v.PlayerID,
		Status:    string(v.Status),
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func invitesToDTO(ctx context.Context, items []invite.Invite) []inviteDTO {
	ctx, span := startSpan(ctx, "httpapi.invitesToDTO")
	defer span.End()

	dtos := make([]inviteDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, inviteToDTO(ctx, item))
	}

	return dtos
}
