package monitor

import (
	"net/http"
	"os"
	"time"

	"github.com/Spacespixel/ppsasset-new/config"

	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

// ServiceStatus reports the running state of the service and its database.
// The marketing front-end polls this for its maintenance banner.
func ServiceStatus(c *gin.Context) {
	dbStatus := "ok"
	if config.DB == nil {
		dbStatus = "not connected"
	} else if sqlDB, err := config.DB.DB(); err != nil {
		dbStatus = "error"
	} else if err := sqlDB.Ping(); err != nil {
		dbStatus = "unreachable"
	}

	status := "ok"
	if dbStatus != "ok" {
		status = "degraded"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   status,
		"database": dbStatus,
		"uptime":   time.Since(startedAt).Round(time.Second).String(),
		"mode":     gin.Mode(),
	})
}

// RegisterMonitorPage serves the internal monitor page with live logs.
// Guarded by the same ADMIN_TOKEN as the status update endpoint.
func RegisterMonitorPage(router *gin.Engine) {
	router.GET("/monitor", func(c *gin.Context) {
		expected := os.Getenv("ADMIN_TOKEN")
		if expected == "" || c.Query("token") != expected {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Data(200, "text/html; charset=utf-8", []byte(monitorPage))
	})
}

const monitorPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <title>PPS Asset Monitor</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }

    body {
      background: #0f1a0c;
      color: #e0e0e0;
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
      min-height: 100vh;
      padding: 20px;
    }

    .container { max-width: 1200px; margin: 0 auto; }

    h1 {
      font-size: 2rem;
      color: #7fb069;
      margin-bottom: 1.5rem;
    }

    .status-card {
      background: rgba(255, 255, 255, 0.05);
      border: 1px solid rgba(255, 255, 255, 0.1);
      border-radius: 12px;
      padding: 1.5rem;
      margin-bottom: 1.5rem;
      font-size: 1.1rem;
      font-weight: 600;
    }

    #logs {
      background: rgba(0, 0, 0, 0.4);
      border: 1px solid rgba(255, 255, 255, 0.1);
      border-radius: 12px;
      padding: 1.5rem;
      max-height: 500px;
      overflow-y: auto;
      white-space: pre-wrap;
      font-family: 'Monaco', 'Consolas', monospace;
      font-size: 0.875rem;
      line-height: 1.6;
      color: #cbd5e1;
    }

    button {
      padding: 0.5rem 1.25rem;
      margin-bottom: 1rem;
      background: #365523;
      color: #ffffff;
      border: none;
      border-radius: 8px;
      cursor: pointer;
      font-weight: 600;
    }

    button.paused { background: #8d1537; }
  </style>
</head>
<body>
  <div class="container">
    <h1>PPS Asset Monitor</h1>

    <div class="status-card" id="status">Status: Checking...</div>

    <button onclick="toggleLive()" id="toggleBtn">Pause Live Logs</button>
    <pre id="logs">Loading logs...</pre>
  </div>

  <script>
    let liveLogs = true;
    const token = new URLSearchParams(location.search).get('token');
    const logsElement = document.getElementById('logs');
    const statusElement = document.getElementById('status');
    const toggleBtn = document.getElementById('toggleBtn');

    function fetchStatus() {
      fetch('/api/v1/status')
        .then(res => res.json())
        .then(data => {
          statusElement.textContent = 'Status: ' + data.status + ' | DB: ' + data.database + ' | Uptime: ' + data.uptime;
        })
        .catch(() => { statusElement.textContent = 'Status: unreachable'; });
    }

    function fetchLogs() {
      if (!liveLogs) return;
      fetch('/logs?token=' + encodeURIComponent(token))
        .then(res => res.text())
        .then(text => {
          logsElement.textContent = text;
          logsElement.scrollTop = logsElement.scrollHeight;
        })
        .catch(() => { logsElement.textContent = 'Unable to load logs'; });
    }

    function toggleLive() {
      liveLogs = !liveLogs;
      toggleBtn.textContent = liveLogs ? 'Pause Live Logs' : 'Resume Live Logs';
      toggleBtn.classList.toggle('paused', !liveLogs);
    }

    fetchStatus();
    fetchLogs();
    setInterval(fetchStatus, 10000);
    setInterval(fetchLogs, 5000);
  </script>
</body>
</html>`
