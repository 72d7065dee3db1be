package service

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/festy23/teamup/internal/notification/dispatcher"
	notificationModel "github.com/festy23/teamup/internal/notification/model"
	requestModel "github.com/festy23/teamup/internal/request/model"
)

// fanout builds the follow-up records written on terminal transitions and
// hands the external best-effort deliveries to the dispatcher. It is
// internal to the lifecycle manager.
type fanout struct {
	dispatcher *dispatcher.Dispatcher
	logger     *zap.SugaredLogger
}

// record builds the notification row addressed to the counterpart party
// (the non-acting side of the exchange). reason is non-nil when the
// rejection came from Accept re-validation.
func (f *fanout) record(
	request *requestModel.MembershipRequest,
	actorID string,
	reason error,
) *notificationModel.Notification {
	kind := notificationModel.KindRequestAccepted
	if request.Status == requestModel.StatusRejected {
		kind = notificationModel.KindRequestRejected
	}

	return &notificationModel.Notification{
		NotificationID: uuid.NewString(),
		Kind:           kind,
		UserID:         request.FromUserID,
		TeamID:         request.TeamID,
		TeamName:       request.TeamName,
		Message:        resolutionMessage(request, actorID, reason),
	}
}

// resolutionMessage renders the human-readable follow-up text.
func resolutionMessage(request *requestModel.MembershipRequest, actorID string, reason error) string {
	noun := "join request"
	if request.Kind == requestModel.KindInvite {
		noun = "invite"
	}

	if request.Status == requestModel.StatusAccepted {
		return fmt.Sprintf("%s accepted your %s for team %q", actorID, noun, request.TeamName)
	}

	msg := fmt.Sprintf("%s rejected your %s for team %q", actorID, noun, request.TeamName)
	if reason != nil {
		msg = fmt.Sprintf("your %s for team %q was rejected: %s", noun, request.TeamName, reason)
	}
	return msg
}

// enqueueCreated dispatches the best-effort notification for a freshly
// created request, addressed to its recipient.
func (f *fanout) enqueueCreated(request *requestModel.MembershipRequest) {
	if f.dispatcher == nil {
		return
	}

	templateID := dispatcher.TemplateJoinRequestCreated
	if request.Kind == requestModel.KindInvite {
		templateID = dispatcher.TemplateInviteCreated
	}

	f.dispatcher.Enqueue(dispatcher.Event{
		TemplateID: templateID,
		Params: map[string]string{
			"request_id":   request.RequestID,
			"user_id":      request.ToUserID,
			"from_user_id": request.FromUserID,
			"team_id":      request.TeamID,
			"team_name":    request.TeamName,
			"message":      request.Message,
		},
	})
}

// enqueueResolved dispatches the best-effort notification for a terminal
// transition, addressed to the counterpart party.
func (f *fanout) enqueueResolved(request *requestModel.MembershipRequest, actorID string) {
	if f.dispatcher == nil {
		return
	}

	templateID := dispatcher.TemplateRequestAccepted
	if request.Status == requestModel.StatusRejected {
		templateID = dispatcher.TemplateRequestRejected
	}

	f.dispatcher.Enqueue(dispatcher.Event{
		TemplateID: templateID,
		Params: map[string]string{
			"request_id": request.RequestID,
			"user_id":    request.FromUserID,
			"actor_id":   actorID,
			"team_id":    request.TeamID,
			"team_name":  request.TeamName,
		},
	})
}
