package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

// Public reads stay reachable without a token; OptionalAuth resolves the
// viewer when one is presented so like and follow annotations render.
func registerPublicRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/feed", OptionalAuth(verifier, http.HandlerFunc(handler.GetFeed)))
	mux.Handle("GET /v1/users/{userID}/feed", OptionalAuth(verifier, http.HandlerFunc(handler.GetUserFeed)))
	mux.Handle("GET /v1/teams/{teamID}/feed", OptionalAuth(verifier, http.HandlerFunc(handler.GetTeamFeed)))
	mux.Handle("GET /v1/leagues/{leagueID}/feed", OptionalAuth(verifier, http.HandlerFunc(handler.GetLeagueFeed)))

	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}", handler.GetLeague)
	mux.HandleFunc("GET /v1/games/{gameID}", handler.GetGame)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/games", handler.ListLeagueGames)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedFeedRoutes(mux, handler, verifier)
	registerAuthorizedPostRoutes(mux, handler, verifier)
	registerAuthorizedTeamRoutes(mux, handler, verifier)
	registerAuthorizedLeagueRoutes(mux, handler, verifier)
	registerAuthorizedGameRoutes(mux, handler, verifier)
	registerAuthorizedInviteRoutes(mux, handler, verifier)
	registerAuthorizedUserRoutes(mux, handler, verifier)
}

func registerAuthorizedFeedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/feed/my-teams", RequireAuth(verifier, http.HandlerFunc(handler.GetMyTeamsFeed)))
	mux.Handle("GET /v1/feed/my-leagues", RequireAuth(verifier, http.HandlerFunc(handler.GetMyLeaguesFeed)))
}

func registerAuthorizedPostRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/posts", RequireAuth(verifier, http.HandlerFunc(handler.CreatePost)))
	mux.Handle("POST /v1/posts/recaps", RequireAuth(verifier, http.HandlerFunc(handler.CreateGameRecap)))
	mux.Handle("POST /v1/posts/{postID}/likes/toggle", RequireAuth(verifier, http.HandlerFunc(handler.ToggleLike)))
}

func registerAuthorizedTeamRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/teams", RequireAuth(verifier, http.HandlerFunc(handler.CreateTeam)))
	mux.Handle("PUT /v1/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateTeam)))
	mux.Handle("DELETE /v1/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteTeam)))
	mux.Handle("POST /v1/teams/{teamID}/players", RequireAuth(verifier, http.HandlerFunc(handler.AddTeamPlayer)))
	mux.Handle("DELETE /v1/teams/{teamID}/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.RemoveTeamPlayer)))
	mux.Handle("GET /v1/users/{userID}/teams", RequireAuth(verifier, http.HandlerFunc(handler.ListUserTeams)))
	mux.Handle("GET /v1/users/{userID}/teams/managed", RequireAuth(verifier, http.HandlerFunc(handler.ListUserManagedTeams)))
}

func registerAuthorizedLeagueRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/leagues", RequireAuth(verifier, http.HandlerFunc(handler.CreateLeague)))
	mux.Handle("PUT /v1/leagues/{leagueID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateLeague)))
	mux.Handle("DELETE /v1/leagues/{leagueID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteLeague)))
	mux.Handle("POST /v1/leagues/{leagueID}/teams", RequireAuth(verifier, http.HandlerFunc(handler.AddLeagueTeams)))
	mux.Handle("DELETE /v1/leagues/{leagueID}/teams", RequireAuth(verifier, http.HandlerFunc(handler.RemoveLeagueTeams)))
	mux.Handle("GET /v1/leagues/{leagueID}/teams/available", RequireAuth(verifier, http.HandlerFunc(handler.ListAvailableTeams)))
	mux.Handle("GET /v1/users/{userID}/leagues", RequireAuth(verifier, http.HandlerFunc(handler.ListUserLeagues)))
}

func registerAuthorizedGameRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/games", RequireAuth(verifier, http.HandlerFunc(handler.CreateGame)))
}

func registerAuthorizedInviteRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/invites", RequireAuth(verifier, http.HandlerFunc(handler.CreateInvites)))
	mux.Handle("PATCH /v1/invites/{inviteID}", RequireAuth(verifier, http.HandlerFunc(handler.RespondInvite)))
	mux.Handle("DELETE /v1/invites/{inviteID}", RequireAuth(verifier, http.HandlerFunc(handler.CancelInvite)))
	mux.Handle("GET /v1/invites/me", RequireAuth(verifier, http.HandlerFunc(handler.ListMyInvites)))
	mux.Handle("GET /v1/teams/{teamID}/invites", RequireAuth(verifier, http.HandlerFunc(handler.ListTeamInvites)))
}

func registerAuthorizedUserRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/users/me", RequireAuth(verifier, http.HandlerFunc(handler.RegisterMe)))
	mux.Handle("GET /v1/users/{userID}", RequireAuth(verifier, http.HandlerFunc(handler.GetUser)))
	mux.Handle("POST /v1/users/{userID}/follow/toggle", RequireAuth(verifier, http.HandlerFunc(handler.ToggleFollow)))
}
