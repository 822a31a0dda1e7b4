// Package adminsdk is a Go client for the admin API.
//
// An SDKClient performs unauthenticated calls (health, login). Login returns
// a Session holding the bearer token; every data call goes through the
// Session so callers always pass their credentials explicitly.
//
//	client := adminsdk.NewSDKClient("http://localhost:4000")
//	sess, err := client.Login(ctx, "ops@example.com", "secret")
//	if err != nil {
//		return err
//	}
//	vendors, err := sess.List(ctx, "vendors", 50)
//
// Any call that fails with 401 returns an *APIError for which
// IsUnauthorized reports true. The session is not cleared automatically;
// callers decide when to Logout.
package adminsdk
