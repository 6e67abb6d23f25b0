package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/renato0307/tabstash/internal/domain"
	portsmocks "github.com/renato0307/tabstash/internal/ports/mocks"
)

func TestNotificationService_ShowBuildsNotification(t *testing.T) {
	notifier := portsmocks.NewMockNotifier(t)
	notifier.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
			return strings.HasPrefix(n.ID, notificationIDPrefix) &&
				len(n.ID) > len(notificationIDPrefix) &&
				n.Title == notificationTitle &&
				n.IconURL == notificationIconURL &&
				n.Message == "Saved 3 tab(s)"
		})).
		Return(nil)

	NewNotificationService(notifier).Show(t.Context(), "Saved 3 tab(s)")
}

func TestNotificationService_UniqueIDs(t *testing.T) {
	var ids []string
	notifier := portsmocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).
		Run(func(_ context.Context, n domain.Notification) { ids = append(ids, n.ID) }).
		Return(nil).Times(2)
	svc := NewNotificationService(notifier)

	svc.Show(t.Context(), "one")
	svc.Show(t.Context(), "two")

	assert.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
}

func TestNotificationService_FallsBackInOrder(t *testing.T) {
	primary := portsmocks.NewMockNotifier(t)
	primary.EXPECT().Notify(mock.Anything, mock.Anything).Return(errors.New("host disconnected"))
	secondary := portsmocks.NewMockNotifier(t)
	secondary.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil)
	unused := portsmocks.NewMockNotifier(t)

	NewNotificationService(primary, secondary, unused).Show(t.Context(), "hello")

	unused.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestNotificationService_AllNotifiersFail(t *testing.T) {
	notifier := portsmocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(errors.New("boom"))

	assert.NotPanics(t, func() {
		NewNotificationService(notifier).Show(t.Context(), "hello")
	})
	assert.NotPanics(t, func() {
		NewNotificationService().Show(t.Context(), "nobody listens")
	})
}
