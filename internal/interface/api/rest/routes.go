package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth  = RouteApiV1 + "/auth"
	RouteLogin = RouteAuth + "/login"

	// listings
	RouteProperties    = RouteApiV1 + "/properties"
	RouteProperty      = RouteProperties + "/:property_id"
	RoutePropertyStats = RouteProperties + "/stats"

	// boards and posts
	RouteBoards      = RouteApiV1 + "/boards"
	RouteBoard       = RouteBoards + "/:slug"
	RouteBoardPosts  = RouteBoard + "/posts"
	RouteBoardLatest = RouteBoard + "/latest"
	RoutePosts       = RouteApiV1 + "/posts"
	RoutePost        = RoutePosts + "/:post_id"
	RoutePostFile    = RoutePost + "/download"
	RouteRecentPosts = RoutePosts + "/recent"

	// inquiries
	RouteInquiries      = RouteApiV1 + "/inquiries"
	RouteInquiryDetails = RouteInquiries + "/details"

	// site administration
	RoutePages = RouteApiV1 + "/pages"
	RoutePage  = RoutePages + "/:slug"

	RouteSettings   = RouteApiV1 + "/settings"
	RouteWatermarks = RouteApiV1 + "/watermarks"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
