package controllers

import (
	"net/http"

	"github.com/MILANBHADARKA/TiffinCart-sub000/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

var hub *services.RealtimeHub

func SetRealtimeHub(h *services.RealtimeHub) {
	hub = h
}

// OrderEventsWS upgrades the connection and parks it in the hub; the
// client only listens, so the read loop exists just to notice closes.
func OrderEventsWS(c *gin.Context) {
	if hub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "realtime not available"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := &services.WSClient{UserID: c.GetUint("userID"), Conn: conn}
	hub.Register(client)

	go func() {
		defer hub.Unregister(client)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
