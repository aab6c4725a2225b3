// Package session issues stateless session identifiers and finds them again
// on incoming requests.
//
// A Client ties together three collaborators: an IDGenerator minting salted,
// time-ordered identifiers (pkg/sessionid), a PartitionKeyGenerator deriving a
// storage shard from the identifier (pkg/partition) and a Transport reading
// the identifier back from the request. Nothing is persisted server side: a
// Session record carries everything needed to validate itself, given the
// secret salt.
//
//	┌─────────┐  cookie / query / form  ┌──────────────────┐
//	│ Client  │ ──────────────────────► │ OrderedTransport │
//	└─────────┘                         └──────────────────┘
//	     ▲                                       │ Resolve
//	     │ Set-Cookie "{partitionKey}-{id}"      ▼
//	┌─────────────────────────────────────────────────┐
//	│                      Client                     │
//	└─────────────────────────────────────────────────┘
//	     │ CreateSession / ValidateSessionID   │ GeneratePartitionKey
//	     ▼                                      ▼
//	 sessionid.Generator                  partition.Generator
//
// # Usage
//
//	client := session.New(session.WithConfig(session.Config{
//	    Salt:            os.Getenv("SESSION_SALT"),
//	    ApplicationName: "myapp",
//	    CookieName:      ".dfc-session",
//	}))
//
//	func login(w http.ResponseWriter, r *http.Request) {
//	    sess, err := client.NewSession()
//	    if err != nil {
//	        http.Error(w, "session error", http.StatusInternalServerError)
//	        return
//	    }
//	    // freshly minted, validation would be redundant
//	    _ = client.CreateCookie(w, sess, false)
//	}
//
//	func page(w http.ResponseWriter, r *http.Request) {
//	    code, ok := client.FindSessionCode(r.Context(), r)
//	    _, _ = code, ok
//	}
//
// # Source precedence
//
// The identifier may arrive in a cookie, a query string parameter or a form
// field. Sources are consulted in that order and every non-blank value
// overwrites the previous one, so a form value beats a query value which
// beats the cookie. The query and form key is the cookie name without its
// leading dots ("dfc-session" for ".dfc-session"). Missing identifiers are
// logged as warnings, except on the root path.
//
// # Error Handling
//
//   - ErrInvalidSession   – record failed validation in CreateCookie
//   - ErrSessionNotFound  – a transport found no identifier
//   - ErrTokenGeneration  – identifier could not be minted
//   - ErrInvalidConfig    – NewFromConfig received unusable settings
package session
