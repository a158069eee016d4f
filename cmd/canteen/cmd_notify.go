package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/smartbytes/canteen/config"
	"github.com/smartbytes/canteen/pkg/logger"
)

// canteen notify
var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Show the notification feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		app.views.Notifications()
		return nil
	},
}

// canteen notify:read <id>
var notifyReadCmd = &cobra.Command{
	Use:   "notify:read <id>",
	Short: "Mark a notification as read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		app.notify.MarkRead(id)
		fmt.Printf("%d unread.\n", app.notify.UnreadCount())
		return nil
	},
}

// canteen notify:read-all
var notifyReadAllCmd = &cobra.Command{
	Use:   "notify:read-all",
	Short: "Mark every notification as read",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		app.notify.MarkAllRead()
		fmt.Println("All notifications marked as read.")
		return nil
	},
}

// canteen notify:clear
var notifyClearCmd = &cobra.Command{
	Use:   "notify:clear",
	Short: "Delete every notification",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		app.notify.ClearAll()
		fmt.Println("Notifications cleared.")
		return nil
	},
}

// canteen notify:watch
var notifyWatchCmd = &cobra.Command{
	Use:   "notify:watch",
	Short: "Stream live order events into the feed (Ctrl-C to stop)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}

		wsURL, err := eventsURL(config.APIBaseURL())
		if err != nil {
			return err
		}

		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		if err != nil {
			return fmt.Errorf("connect to %s: %w", wsURL, err)
		}
		defer conn.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		go func() {
			<-ctx.Done()
			conn.Close()
		}()

		fmt.Printf("Watching %s\n", wsURL)
		for {
			var event struct {
				Message string `json:"message"`
			}
			if err := conn.ReadJSON(&event); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				logger.Warn("notify: event stream closed", "error", err)
				return nil
			}
			if event.Message == "" {
				continue
			}
			n := app.notify.Add(event.Message)
			fmt.Printf("[%s] %s\n", n.Timestamp.Local().Format("15:04:05"), n.Message)
		}
	},
}

// eventsURL derives the websocket endpoint from the API base URL:
// http://host:port/api becomes ws://host:port/ws/events.
func eventsURL(base string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse API base URL: %w", err)
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = strings.TrimSuffix(u.Path, "/api")
	u.Path = strings.TrimSuffix(u.Path, "/") + "/ws/events"
	return u.String(), nil
}
