package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "content").
		From("posts").
		Where(Eq("user_id", "u1")).
		OrderBy("created_at DESC", "id DESC").
		Limit(11).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, content FROM posts WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT 11"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "u1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderOrComposition(t *testing.T) {
	teamFeed := Or(
		Expr("user_id IN (SELECT user_id FROM team_players WHERE team_id = ?)", "t1"),
		Eq("home_team_id", "t1"),
		Eq("away_team_id", "t1"),
	)

	query, args, err := Select("id").
		From("posts").
		Where(Or(teamFeed, Eq("league_id", "l1"))).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM posts WHERE (" +
		"(user_id IN (SELECT user_id FROM team_players WHERE team_id = $1)" +
		" OR home_team_id = $2 OR away_team_id = $3)" +
		" OR league_id = $4)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestEmptyOrMatchesNothing(t *testing.T) {
	query, args, err := Select("id").From("posts").Where(Or()).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM posts WHERE 1=0"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInCondition(t *testing.T) {
	query, args, err := Select("id").
		From("posts").
		Where(InStrings("league_id", []string{"l1", "l2"})).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM posts WHERE league_id IN ($1, $2)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInConditionEmpty(t *testing.T) {
	query, _, err := Select("id").From("posts").Where(In("league_id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT id FROM posts WHERE 1=0" {
		t.Fatalf("unexpected query: %s", query)
	}
}

func TestInsertBuilderMultiRowWithSuffix(t *testing.T) {
	query, args, err := InsertInto("team_players").
		Columns("team_id", "user_id").
		Values("t1", "u1").
		Values("t1", "u2").
		Suffix("ON CONFLICT DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO team_players (team_id, user_id) VALUES ($1, $2), ($3, $4) ON CONFLICT DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilderGuarded(t *testing.T) {
	query, args, err := Update("player_invites").
		Set("status", "ACCEPTED").
		Where(Eq("id", "i1"), Eq("status", "PENDING")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE player_invites SET status = $1 WHERE id = $2 AND status = $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilderRequiresConditions(t *testing.T) {
	if _, _, err := DeleteFrom("likes").ToSQL(); err == nil {
		t.Fatal("expected error for delete without conditions")
	}

	query, args, err := DeleteFrom("likes").
		Where(Eq("user_id", "u1"), Eq("post_id", "p1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM likes WHERE user_id = $1 AND post_id = $2" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestExprCursorTuple(t *testing.T) {
	query, args, err := Select("id").
		From("posts").
		Where(Expr("(created_at, id) <= (?, ?)", "2024-01-01", "p9")).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM posts WHERE (created_at, id) <= ($1, $2)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}
