package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/NedohAR/marketplace-platform/internal/messaging"
	"github.com/NedohAR/marketplace-platform/internal/messaging/model"
	"github.com/NedohAR/marketplace-platform/pkg/errors"
	"github.com/NedohAR/marketplace-platform/pkg/logger"
)

type MessagingUsecase struct {
	repo     messaging.ConversationRepository
	profiles messaging.ProfileProvider
	listings messaging.ListingProvider
	logger   logger.Logger
}

func NewMessagingUsecase(
	repo messaging.ConversationRepository,
	profiles messaging.ProfileProvider,
	listings messaging.ListingProvider,
	logger logger.Logger,
) *MessagingUsecase {
	return &MessagingUsecase{
		repo:     repo,
		profiles: profiles,
		listings: listings,
		logger:   logger,
	}
}

func (uc *MessagingUsecase) StartConversation(ctx context.Context, cmd messaging.StartConversationCommand) (*messaging.ConversationSummaryDTO, error) {
	if cmd.OtherUserID == cmd.CurrentUserID {
		return nil, errors.ErrSelfConversation
	}

	low, high := model.CanonicalPair(cmd.CurrentUserID, cmd.OtherUserID)
	conv, _, err := uc.repo.GetOrCreate(ctx, low, high, cmd.ListingID)
	if err != nil {
		uc.logger.Error("failed to get or create conversation", "err", err)
		return nil, errors.ErrConversationLookupFailed(err)
	}

	summary, err := uc.buildSummary(ctx, conv, cmd.CurrentUserID)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func (uc *MessagingUsecase) ListConversations(ctx context.Context, viewerID uuid.UUID) ([]messaging.ConversationSummaryDTO, error) {
	convs, err := uc.repo.ListByParticipant(ctx, viewerID)
	if err != nil {
		uc.logger.Error("failed to list conversations", "viewer_id", viewerID, "err", err)
		return nil, errors.Internal("failed to list conversations")
	}

	convIDs := make([]uuid.UUID, 0, len(convs))
	otherIDs := make([]uuid.UUID, 0, len(convs))
	listingIDs := make([]uuid.UUID, 0, len(convs))
	for _, conv := range convs {
		convIDs = append(convIDs, conv.ID)
		otherIDs = append(otherIDs, conv.OtherParticipant(viewerID))
		if conv.ListingID != nil {
			listingIDs = append(listingIDs, *conv.ListingID)
		}
	}

	profiles, err := uc.profiles.GetProfiles(ctx, otherIDs)
	if err != nil {
		uc.logger.Error("failed to load participant profiles", "err", err)
		return nil, errors.Internal("failed to load participant profiles")
	}
	listingSummaries, err := uc.listings.GetListingSummaries(ctx, listingIDs)
	if err != nil {
		// Listing context is enrichment only; a broken listing join must
		// not hide the conversation list.
		uc.logger.Error("failed to load listing summaries", "err", err)
		listingSummaries = map[uuid.UUID]messaging.ListingSummaryDTO{}
	}
	lastMessages, err := uc.repo.LastMessages(ctx, convIDs)
	if err != nil {
		uc.logger.Error("failed to load last messages", "err", err)
		return nil, errors.Internal("failed to load last messages")
	}
	unreadCounts, err := uc.repo.UnreadCounts(ctx, viewerID, convIDs)
	if err != nil {
		uc.logger.Error("failed to load unread counts", "err", err)
		return nil, errors.Internal("failed to load unread counts")
	}

	senderIDs := make([]uuid.UUID, 0, len(lastMessages))
	for _, msg := range lastMessages {
		senderIDs = append(senderIDs, msg.SenderID)
	}
	senders, err := uc.profiles.GetProfiles(ctx, senderIDs)
	if err != nil {
		uc.logger.Error("failed to load sender profiles", "err", err)
		senders = map[uuid.UUID]messaging.ParticipantDTO{}
	}

	result := make([]messaging.ConversationSummaryDTO, 0, len(convs))
	for _, conv := range convs {
		summary := messaging.ConversationSummaryDTO{
			ID:            conv.ID,
			OtherUser:     participantOrPlaceholder(profiles, conv.OtherParticipant(viewerID)),
			LastMessageAt: conv.LastMessageAt,
			CreatedAt:     conv.CreatedAt,
			UnreadCount:   unreadCounts[conv.ID],
		}
		if conv.ListingID != nil {
			if listing, ok := listingSummaries[*conv.ListingID]; ok {
				summary.Listing = &listing
			}
		}
		if msg, ok := lastMessages[conv.ID]; ok {
			summary.LastMessage = &messaging.LastMessageDTO{
				ID:         msg.ID,
				Content:    msg.Content,
				SenderID:   msg.SenderID,
				SenderName: participantOrPlaceholder(senders, msg.SenderID).Name,
				IsRead:     msg.IsRead,
				CreatedAt:  msg.CreatedAt,
			}
		}
		result = append(result, summary)
	}
	return result, nil
}

func (uc *MessagingUsecase) GetConversationDetail(ctx context.Context, conversationID, viewerID uuid.UUID) (*messaging.ConversationDetailDTO, error) {
	conv, err := uc.conversationForViewer(ctx, conversationID, viewerID)
	if err != nil {
		return nil, err
	}

	msgs, err := uc.listMessagesForViewer(ctx, conv, viewerID)
	if err != nil {
		return nil, err
	}

	summary, err := uc.buildSummary(ctx, conv, viewerID)
	if err != nil {
		return nil, err
	}
	// Viewing just cleared everything addressed to the viewer.
	summary.UnreadCount = 0

	return &messaging.ConversationDetailDTO{
		Conversation: *summary,
		Messages:     msgs,
	}, nil
}

func (uc *MessagingUsecase) ListMessages(ctx context.Context, conversationID, viewerID uuid.UUID) ([]messaging.MessageDTO, error) {
	conv, err := uc.conversationForViewer(ctx, conversationID, viewerID)
	if err != nil {
		return nil, err
	}
	return uc.listMessagesForViewer(ctx, conv, viewerID)
}

func (uc *MessagingUsecase) SendMessage(ctx context.Context, cmd messaging.SendMessageCommand) (*messaging.MessageDTO, error) {
	content := strings.TrimSpace(cmd.Content)
	if content == "" {
		return nil, errors.ErrEmptyContent
	}

	conv, err := uc.resolveTargetConversation(ctx, cmd)
	if err != nil {
		return nil, err
	}

	listingID := cmd.ListingID
	if listingID == nil {
		listingID = conv.ListingID
	}

	// A parent reference that does not resolve within this conversation
	// is dropped rather than rejected.
	var parent *model.Message
	if cmd.ParentMessageID != nil {
		parent, err = uc.repo.GetMessageInConversation(ctx, *cmd.ParentMessageID, conv.ID)
		if err != nil {
			uc.logger.Error("failed to resolve parent message", "err", err)
			return nil, errors.ErrSendFailed(err)
		}
	}

	msg := &model.Message{
		ConversationID: conv.ID,
		SenderID:       cmd.SenderID,
		RecipientID:    conv.OtherParticipant(cmd.SenderID),
		Content:        content,
		ListingID:      listingID,
		IsRead:         false,
		CreatedAt:      time.Now().UTC(),
	}
	if parent != nil {
		msg.ParentMessageID = &parent.ID
	}

	if err := uc.repo.CreateMessage(ctx, msg); err != nil {
		uc.logger.Error("failed to persist message", "conversation_id", conv.ID, "err", err)
		return nil, errors.ErrSendFailed(err)
	}

	dto := uc.toMessageDTO(ctx, msg)
	if parent != nil {
		dto.ParentMessage = &messaging.ParentMessageDTO{
			ID:       parent.ID,
			Content:  parent.Content,
			SenderID: parent.SenderID,
		}
	}
	return dto, nil
}

func (uc *MessagingUsecase) UnreadCount(ctx context.Context, conversationID, viewerID uuid.UUID) (int, error) {
	if _, err := uc.conversationForViewer(ctx, conversationID, viewerID); err != nil {
		return 0, err
	}

	count, err := uc.repo.UnreadCount(ctx, conversationID, viewerID)
	if err != nil {
		uc.logger.Error("failed to count unread messages", "err", err)
		return 0, errors.Internal("failed to count unread messages")
	}
	return count, nil
}

func (uc *MessagingUsecase) UnreadTotal(ctx context.Context, viewerID uuid.UUID) (int, error) {
	convs, err := uc.repo.ListByParticipant(ctx, viewerID)
	if err != nil {
		uc.logger.Error("failed to list conversations", "viewer_id", viewerID, "err", err)
		return 0, errors.Internal("failed to list conversations")
	}

	convIDs := make([]uuid.UUID, 0, len(convs))
	for _, conv := range convs {
		convIDs = append(convIDs, conv.ID)
	}
	counts, err := uc.repo.UnreadCounts(ctx, viewerID, convIDs)
	if err != nil {
		uc.logger.Error("failed to load unread counts", "err", err)
		return 0, errors.Internal("failed to load unread counts")
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	return total, nil
}

// conversationForViewer loads the conversation and enforces the
// participant-only access rule. A non-participant gets the same generic
// denial whether or not the conversation exists beyond its id.
func (uc *MessagingUsecase) conversationForViewer(ctx context.Context, conversationID, viewerID uuid.UUID) (*model.Conversation, error) {
	conv, err := uc.repo.GetByID(ctx, conversationID)
	if err != nil {
		uc.logger.Error("failed to load conversation", "conversation_id", conversationID, "err", err)
		return nil, errors.ErrConversationLookupFailed(err)
	}
	if conv == nil {
		return nil, errors.ErrConversationNotFound
	}
	if !conv.HasParticipant(viewerID) {
		return nil, errors.ErrNotParticipant
	}
	return conv, nil
}

func (uc *MessagingUsecase) resolveTargetConversation(ctx context.Context, cmd messaging.SendMessageCommand) (*model.Conversation, error) {
	if cmd.ConversationID != nil {
		return uc.conversationForViewer(ctx, *cmd.ConversationID, cmd.SenderID)
	}
	if cmd.OtherUserID == nil {
		return nil, errors.ErrMissingRecipient
	}
	if *cmd.OtherUserID == cmd.SenderID {
		return nil, errors.ErrSelfConversation
	}

	// First contact from a listing page: get-or-create, then send.
	low, high := model.CanonicalPair(cmd.SenderID, *cmd.OtherUserID)
	conv, _, err := uc.repo.GetOrCreate(ctx, low, high, cmd.ListingID)
	if err != nil {
		uc.logger.Error("failed to get or create conversation", "err", err)
		return nil, errors.ErrConversationLookupFailed(err)
	}
	return conv, nil
}

func (uc *MessagingUsecase) listMessagesForViewer(ctx context.Context, conv *model.Conversation, viewerID uuid.UUID) ([]messaging.MessageDTO, error) {
	msgs, err := uc.repo.ListMessagesMarkingRead(ctx, conv.ID, viewerID)
	if err != nil {
		uc.logger.Error("failed to list messages", "conversation_id", conv.ID, "err", err)
		return nil, errors.Internal("failed to list messages")
	}

	senderIDs := []uuid.UUID{conv.LowID, conv.HighID}
	senders, err := uc.profiles.GetProfiles(ctx, senderIDs)
	if err != nil {
		uc.logger.Error("failed to load sender profiles", "err", err)
		senders = map[uuid.UUID]messaging.ParticipantDTO{}
	}

	byID := make(map[uuid.UUID]model.Message, len(msgs))
	for _, msg := range msgs {
		byID[msg.ID] = msg
	}

	result := make([]messaging.MessageDTO, 0, len(msgs))
	for _, msg := range msgs {
		sender := participantOrPlaceholder(senders, msg.SenderID)
		dto := messaging.MessageDTO{
			ID:              msg.ID,
			ConversationID:  msg.ConversationID,
			SenderID:        msg.SenderID,
			SenderName:      sender.Name,
			SenderAvatar:    sender.Avatar,
			RecipientID:     msg.RecipientID,
			Content:         msg.Content,
			ListingID:       msg.ListingID,
			ParentMessageID: msg.ParentMessageID,
			IsRead:          msg.IsRead,
			CreatedAt:       msg.CreatedAt,
		}
		if msg.ParentMessageID != nil {
			if parent, ok := byID[*msg.ParentMessageID]; ok {
				dto.ParentMessage = &messaging.ParentMessageDTO{
					ID:       parent.ID,
					Content:  parent.Content,
					SenderID: parent.SenderID,
				}
			}
		}
		result = append(result, dto)
	}
	return result, nil
}

func (uc *MessagingUsecase) buildSummary(ctx context.Context, conv *model.Conversation, viewerID uuid.UUID) (*messaging.ConversationSummaryDTO, error) {
	otherID := conv.OtherParticipant(viewerID)
	other, err := uc.profiles.GetProfile(ctx, otherID)
	if err != nil {
		uc.logger.Error("failed to load participant profile", "user_id", otherID, "err", err)
		return nil, errors.Internal("failed to load participant profile")
	}
	if other == nil {
		other = &messaging.ParticipantDTO{ID: otherID, Name: "Unknown"}
	}

	summary := &messaging.ConversationSummaryDTO{
		ID:            conv.ID,
		OtherUser:     *other,
		LastMessageAt: conv.LastMessageAt,
		CreatedAt:     conv.CreatedAt,
	}

	if conv.ListingID != nil {
		listing, err := uc.listings.GetListingSummary(ctx, *conv.ListingID)
		if err != nil {
			uc.logger.Error("failed to load listing summary", "listing_id", *conv.ListingID, "err", err)
		} else if listing != nil {
			summary.Listing = listing
		}
	}

	last, err := uc.repo.LastMessage(ctx, conv.ID)
	if err != nil {
		uc.logger.Error("failed to load last message", "conversation_id", conv.ID, "err", err)
		return nil, errors.Internal("failed to load last message")
	}
	if last != nil {
		senderName := other.Name
		if last.SenderID == viewerID {
			if self, err := uc.profiles.GetProfile(ctx, viewerID); err == nil && self != nil {
				senderName = self.Name
			}
		}
		summary.LastMessage = &messaging.LastMessageDTO{
			ID:         last.ID,
			Content:    last.Content,
			SenderID:   last.SenderID,
			SenderName: senderName,
			IsRead:     last.IsRead,
			CreatedAt:  last.CreatedAt,
		}
	}

	count, err := uc.repo.UnreadCount(ctx, conv.ID, viewerID)
	if err != nil {
		uc.logger.Error("failed to count unread messages", "conversation_id", conv.ID, "err", err)
		return nil, errors.Internal("failed to count unread messages")
	}
	summary.UnreadCount = count

	return summary, nil
}

func (uc *MessagingUsecase) toMessageDTO(ctx context.Context, msg *model.Message) *messaging.MessageDTO {
	dto := &messaging.MessageDTO{
		ID:              msg.ID,
		ConversationID:  msg.ConversationID,
		SenderID:        msg.SenderID,
		RecipientID:     msg.RecipientID,
		Content:         msg.Content,
		ListingID:       msg.ListingID,
		ParentMessageID: msg.ParentMessageID,
		IsRead:          msg.IsRead,
		CreatedAt:       msg.CreatedAt,
	}
	if sender, err := uc.profiles.GetProfile(ctx, msg.SenderID); err == nil && sender != nil {
		dto.SenderName = sender.Name
		dto.SenderAvatar = sender.Avatar
	}
	return dto
}

func participantOrPlaceholder(profiles map[uuid.UUID]messaging.ParticipantDTO, id uuid.UUID) messaging.ParticipantDTO {
	if p, ok := profiles[id]; ok {
		return p
	}
	return messaging.ParticipantDTO{ID: id, Name: "Unknown"}
}
