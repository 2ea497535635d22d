package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/openpitch/pitchside/internal/domain/invite"
	qb "github.com/openpitch/pitchside/internal/platform/querybuilder"
)

type InviteRepository struct {
	db *sqlx.DB
}

func NewInviteRepository(db *sqlx.DB) *InviteRepository {
	return &InviteRepository{db: db}
}

func (r *InviteRepository) Create(ctx context.Context, inv invite.Invite) error {
	row := inviteTableModel{
		ID:        inv.ID,
		TeamID:    inv.TeamID,
		PlayerID:  inv.PlayerID,
		Status:    string(inv.Status),
		CreatedAt: inv.CreatedAt,
		UpdatedAt: inv.UpdatedAt,
	}
	query, args, err := qb.InsertModel("player_invites", row, "")
	if err != nil {
		return fmt.Errorf("build insert invite query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert invite: %w", err)
	}

	return nil
}

func (r *InviteRepository) GetByID(ctx context.Context, inviteID string) (invite.Invite, bool, error) {
	query, args, err := qb.Select("*").From("player_invites").
		Where(qb.Eq("id", inviteID)).
		ToSQL()
	if err != nil {
		return invite.Invite{}, false, fmt.Errorf("build get invite query: %w", err)
	}

	var row inviteTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return invite.Invite{}, false, nil
		}
		return invite.Invite{}, false, fmt.Errorf("get invite by id: %w", err)
	}

	return rowToInvite(row), true, nil
}

// TransitionFromPending is the guarded state transition: the WHERE
// clause only matches PENDING rows, so a terminal invite is never
// rewritten. Zero affected rows means missing or already terminal.
func (r *InviteRepository) TransitionFromPending(ctx context.Context, inviteID string, to invite.Status) (bool, error) {
	query, args, err := qb.Update("player_invites").
		Set("status", string(to)).
		Set("updated_at", time.Now().UTC()).
		Where(
			qb.Eq("id", inviteID),
			qb.Eq("status", string(invite.StatusPending)),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build transition invite query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("transition invite: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read transition invite result: %w", err)
	}

	return affected > 0, nil
}

func (r *InviteRepository) ListByPlayer(ctx context.Context, playerID string) ([]invite.Invite, error) {
	query, args, err := qb.Select("*").From("player_invites").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("created_at DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list invites by player query: %w", err)
	}

	return r.selectInvites(ctx, query, args)
}

func (r *InviteRepository) ListByTeam(ctx context.Context, teamID string) ([]invite.Invite, error) {
	query, args, err := qb.Select("*").From("player_invites").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("created_at DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list invites by team query: %w", err)
	}

	return r.selectInvites(ctx, query, args)
}

func (r *InviteRepository) selectInvites(ctx context.Context, query string, args []any) ([]invite.Invite, error) {
	var rows []inviteTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select invites: %w", err)
	}

	out := make([]invite.Invite, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowToInvite(row))
	}

	return out, nil
}

func rowToInvite(row inviteTableModel) invite.Invite {
	return invite.Invite{
		ID:        row.ID,
		TeamID:    row.TeamID,
		PlayerID:  row.PlayerID,
		Status:    invite.Status(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
