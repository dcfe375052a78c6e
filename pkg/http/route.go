package http

import "context"

type Route struct {
	Method string
	URL    string
}

type contextKey int

const routeContextKey contextKey = iota

func withRoute(ctx context.Context, route Route) context.Context {
	return context.WithValue(ctx, routeContextKey, route)
}

func getRoute(ctx context.Context) Route {
	if ctx == nil {
		return Route{}
	}

	route, _ := ctx.Value(routeContextKey).(Route)
	return route
}
