package httpadapter

import (
	"context"
	"net/http"
)

func contextWithPlayer(r *http.Request, id string) context.Context {
	return context.WithValue(r.Context(), playerKey{}, id)
}

func playerFrom(r *http.Request) string {
	id, _ := r.Context().Value(playerKey{}).(string)
	return id
}
