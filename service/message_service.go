package service

import (
	"fmt"
	"log"
	"strings"

	"github.com/cydxin/studybud/models"
	"github.com/cydxin/studybud/repository"
	"gorm.io/gorm"
)

type MessageService struct {
	*Service
	msgDao  *models.MessageDAO
	roomDao *repository.RoomDAO
}

func NewMessageService(s *Service) *MessageService {
	log.Println("NewMessageService")
	return &MessageService{
		Service: s,
		msgDao:  models.NewMessageDAO(s.DB),
		roomDao: repository.NewRoomDAO(s.DB),
	}
}

// MessageReq 发送/编辑消息表单
type MessageReq struct {
	Body string `form:"body" json:"body"`
}

func validateBody(body string) error {
	if strings.TrimSpace(body) == "" {
		return &ValidationError{Fields: map[string]string{"body": msgRequired}}
	}
	return nil
}

// PostMessage 在房间里发言；消息创建与“发言者加入参与者”在同一事务内
func (s *MessageService) PostMessage(roomID, senderID uint64, body string) (*models.Message, error) {
	if err := validateBody(body); err != nil {
		return nil, err
	}

	msg := &models.Message{
		RoomID:   roomID,
		SenderID: senderID,
		Body:     body,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		roomDao := s.roomDao.WithDB(tx)
		if _, err := roomDao.FindByID(roomID); err != nil {
			return fmt.Errorf("load room %d: %w", roomID, err)
		}
		if err := s.msgDao.WithDB(tx).Create(msg); err != nil {
			return err
		}
		return roomDao.AddParticipant(roomID, senderID)
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// GetMessageByID 带作者；不存在时返回 gorm.ErrRecordNotFound
func (s *MessageService) GetMessageByID(msgID uint64) (*models.Message, error) {
	msg, err := s.msgDao.FindByID(msgID)
	if err != nil {
		return nil, fmt.Errorf("load message %d: %w", msgID, err)
	}
	return msg, nil
}

// CheckAuthor 加载消息并确认操作者是作者，否则返回 ErrForbidden
func (s *MessageService) CheckAuthor(actorID, msgID uint64) (*models.Message, error) {
	msg, err := s.GetMessageByID(msgID)
	if err != nil {
		return nil, err
	}
	if msg.SenderID != actorID {
		return nil, ErrForbidden
	}
	return msg, nil
}

// UpdateMessage 仅作者可编辑
func (s *MessageService) UpdateMessage(actorID, msgID uint64, body string) (*models.Message, error) {
	msg, err := s.CheckAuthor(actorID, msgID)
	if err != nil {
		return nil, err
	}
	if err := validateBody(body); err != nil {
		return nil, err
	}
	if err := s.msgDao.UpdateBody(msgID, body); err != nil {
		return nil, err
	}
	msg.Body = body
	return msg, nil
}

// DeleteMessage 仅作者可删除，返回所属房间 ID 用于跳转
func (s *MessageService) DeleteMessage(actorID, msgID uint64) (uint64, error) {
	msg, err := s.CheckAuthor(actorID, msgID)
	if err != nil {
		return 0, err
	}
	if err := s.msgDao.Delete(msgID); err != nil {
		return 0, err
	}
	return msg.RoomID, nil
}
