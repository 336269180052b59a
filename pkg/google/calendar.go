package google

import (
	"context"
	"fmt"

	"github.com/notecal/notecal/internal/config"
	"github.com/notecal/notecal/pkg/notes"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Calendar creates events in the configured Google calendar. It satisfies
// notes.EventCreator.
type Calendar struct {
	auth       *GoogleAuth
	calendarId string
}

func NewCalendar(auth *GoogleAuth, cfg config.Calendar) *Calendar {
	return &Calendar{
		auth:       auth,
		calendarId: cfg.Id,
	}
}

func (c *Calendar) CreateEvent(ctx context.Context, req notes.EventRequest) (string, error) {
	service, err := c.prepareGoogleService(ctx)
	if err != nil {
		return "", err
	}

	log.Debugf("inserting event %q (%s - %s) into calendar %s", req.Summary, req.Start, req.End, c.calendarId)
	result, err := service.Events.Insert(c.calendarId, &gcal.Event{
		Summary: req.Summary,
		Start: &gcal.EventDateTime{
			DateTime: req.Start,
			TimeZone: req.TimeZone,
		},
		End: &gcal.EventDateTime{
			DateTime: req.End,
			TimeZone: req.TimeZone,
		},
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("unable to insert event in Google Calendar: %w", err)
	}

	return result.Id, nil
}

func (c *Calendar) prepareGoogleService(ctx context.Context) (*gcal.Service, error) {
	accessToken, err := c.auth.GetValidAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	service, err := gcal.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("unable to create Calendar client: %w", err)
	}
	return service, nil
}
