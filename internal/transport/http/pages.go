package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mlehnert/linkup-backend/internal/session"
)

var welcomePageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8" />
<meta name="viewport" content="width=device-width, initial-scale=1.0" />
<title>Linkup</title>
<style>
body { font-family: Arial, sans-serif; margin: 0; background: linear-gradient(135deg,#2b5876,#4e4376); color: #fff; min-height: 100vh; display: flex; flex-direction: column; }
header { flex: 1; padding: 60px 20px; text-align: center; }
input { width: 100%; max-width: 320px; padding: 10px; margin: 8px 0; border: 1px solid #ccc; border-radius: 4px; }
button { margin: 10px; padding: 12px 24px; font-size: 16px; border: none; border-radius: 4px; cursor: pointer; background: rgba(255,255,255,0.2); color: #fff; }
button:hover { background: rgba(255,255,255,0.4); }
footer { text-align: center; padding: 20px; font-size: 14px; opacity: 0.8; }
</style>
</head>
<body>
<header>
  <h1>Welcome to Linkup</h1>
  <p>Find your people. Register or log in to continue.</p>
  <form method="post" action="/registration">
    <input name="first" placeholder="First name" required />
    <input name="last" placeholder="Last name" required />
    <input type="email" name="email" placeholder="Email" required />
    <input type="password" name="password" placeholder="Password" required />
    <button type="submit">Register</button>
  </form>
  <form method="post" action="/login">
    <input type="email" name="email" placeholder="Email" required />
    <input type="password" name="password" placeholder="Password" required />
    <button type="submit">Login</button>
  </form>
</header>
<footer>Linkup</footer>
</body>
</html>`

var appShellHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8" />
<title>Linkup</title>
</head>
<body>
<div id="app"></div>
<script src="/static/bundle.js"></script>
</body>
</html>`

// RegisterPages wires the welcome page and the authenticated app shell. The
// welcome page and the catch-all invert each other: welcome redirects
// signed-in users into the app, the catch-all redirects everyone else out.
func RegisterPages(e *echo.Echo, sessions *session.Manager) {
	e.GET("/welcome", func(c echo.Context) error {
		if _, err := sessions.UserID(c); err == nil {
			return c.Redirect(http.StatusFound, "/")
		}
		return c.HTML(http.StatusOK, welcomePageHTML)
	})

	e.GET("/*", func(c echo.Context) error {
		if _, err := sessions.UserID(c); err != nil {
			return c.Redirect(http.StatusFound, "/welcome")
		}
		return c.HTML(http.StatusOK, appShellHTML)
	})
}
