package notification

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"topreceit/backend/internal/logger"
)

// FirebaseNotifier sends push notifications through Firebase Cloud
// Messaging. With no credentials configured it runs disabled and drops
// every message after logging it, so the rest of the app never has to
// care whether pushes are wired up.
type FirebaseNotifier struct {
	client *messaging.Client
}

// NewFirebaseNotifier initializes the FCM client from a service account
// credentials file. An empty path yields a disabled notifier.
func NewFirebaseNotifier(ctx context.Context, credentialsFile string) (*FirebaseNotifier, error) {
	if credentialsFile == "" {
		logger.Log.Info("push notifications disabled: no firebase credentials configured")
		return &FirebaseNotifier{}, nil
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("initializing firebase messaging: %w", err)
	}
	return &FirebaseNotifier{client: client}, nil
}

// Send delivers one notification to a device token.
func (n *FirebaseNotifier) Send(ctx context.Context, token, title, body string) error {
	if n.client == nil {
		logger.Log.Debug("dropping push notification: notifier disabled")
		return nil
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}
	if _, err := n.client.Send(ctx, msg); err != nil {
		return fmt.Errorf("sending push notification: %w", err)
	}
	return nil
}
