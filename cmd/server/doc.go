// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

/*
Command server runs the SwipeFlix HTTP API.

Startup order:

 1. Configuration is loaded with koanf: defaults, then config.yaml (or
    CONFIG_PATH), then environment variables.
 2. The ratings and items tables are parsed and both similarity models are
    built. A malformed table aborts startup.
 3. The HTTP server and the maintenance loop are started under a suture
    supervisor tree.

SIGINT and SIGTERM cancel the tree; in-flight requests get
HTTP_SHUTDOWN_TIMEOUT to finish.

# Example

	export RATINGS_PATH=data/u.data
	export ITEMS_PATH=data/u.item
	export HTTP_PORT=8080
	export LOG_FORMAT=console
	./swipeflix

	curl -X POST localhost:8080/api/v1/swipe \
	  -d '{"user_id": 1, "movie_title": "Toy Story (1995)", "swipe_type": "like"}'
	curl 'localhost:8080/api/v1/recommendations?user_id=1&top_n=5'

Set RECOMMEND_CACHE_BACKEND=redis and REDIS_ADDR to share the
recommendation cache between replicas.
*/
package main
