package apiclient

import (
	"context"
	"net/url"
	"strconv"

	"github.com/fundiconnect/fundictl/pkg/marketplace"
)

// GetNotifications fetches the current user's notifications, newest first.
// unreadOnly narrows to unread entries.
func (c *Client) GetNotifications(ctx context.Context, unreadOnly bool) ([]marketplace.Notification, error) {
	q := url.Values{}
	if unreadOnly {
		q.Set("unread", strconv.FormatBool(true))
	}
	var notes []marketplace.Notification
	if err := c.get(ctx, "/notifications", q, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// MarkNotificationRead marks one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.patch(ctx, "/notifications/"+url.PathEscape(id)+"/read", nil, nil)
}

// GetFundiReviews fetches reviews left for a fundi.
func (c *Client) GetFundiReviews(ctx context.Context, fundiID string) ([]marketplace.Review, error) {
	var reviews []marketplace.Review
	if err := c.get(ctx, "/fundis/"+url.PathEscape(fundiID)+"/reviews", nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateReview rates a completed job.
func (c *Client) CreateReview(ctx context.Context, jobID string, rating int, comment string) (*marketplace.Review, error) {
	body := map[string]any{"rating": rating, "comment": comment}
	var review marketplace.Review
	if err := c.post(ctx, "/jobs/"+url.PathEscape(jobID)+"/review", body, &review); err != nil {
		return nil, err
	}
	return &review, nil
}
