package service

import (
	"fmt"
	"log"
	"strings"
	"unicode"

	"github.com/cydxin/studybud/models"
	"github.com/cydxin/studybud/repository"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

type RoomService struct {
	*Service
	roomDao  *repository.RoomDAO
	topicDao *repository.TopicDAO
	msgDao   *models.MessageDAO
}

func NewRoomService(s *Service) *RoomService {
	log.Println("NewRoomService")
	return &RoomService{
		Service:  s,
		roomDao:  repository.NewRoomDAO(s.DB),
		topicDao: repository.NewTopicDAO(s.DB),
		msgDao:   models.NewMessageDAO(s.DB),
	}
}

// RoomReq 创建/编辑房间表单
type RoomReq struct {
	Topic       string `form:"topic" json:"topic" binding:"max=200"`
	Name        string `form:"room_name" json:"room_name" binding:"max=200"`
	Description string `form:"description" json:"description"`
}

// HomeDTO 首页：搜索结果 + 话题筛选 + 动态流
type HomeDTO struct {
	Query        string       `json:"q"`
	Rooms        []RoomDTO    `json:"rooms"`
	Topics       []TopicDTO   `json:"topics"`
	RoomsCount   int64        `json:"rooms_count"`
	RoomMessages []MessageDTO `json:"room_messages"`
}

// RoomPageDTO 房间详情
type RoomPageDTO struct {
	Room         *RoomDTO       `json:"room"`
	RoomMessages []MessageDTO   `json:"room_messages"`
	Participants []UserBriefDTO `json:"participants"`
}

// RoomFormDTO 创建/编辑房间页面
type RoomFormDTO struct {
	Room   *RoomDTO   `json:"room,omitempty"`
	Topics []TopicDTO `json:"topics"`
}

// NormalizeTopicName 话题名按单词首字母大写；空白时使用占位话题。
// 任何非大小写字符（数字、撇号、空格）之后的字母都视为新单词开头，
// 所以 "3d printing" -> "3D Printing"，"o'neil" -> "O'Neil"。
func NormalizeTopicName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return defaultTopicName
	}
	// cases.Caser 有状态，不能跨调用共享
	title := cases.Title(language.Und)

	var b strings.Builder
	b.Grow(len(name))
	start := -1
	for i, r := range name {
		if isCased(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			b.WriteString(title.String(name[start:i]))
			start = -1
		}
		b.WriteRune(r)
	}
	if start >= 0 {
		b.WriteString(title.String(name[start:]))
	}
	return b.String()
}

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}

func validateRoomReq(req RoomReq) (string, error) {
	v := &ValidationError{}
	name := strings.TrimSpace(req.Name)
	switch {
	case name == "":
		v.add("room_name", msgRequired)
	case len([]rune(name)) > maxRoomNameLen:
		v.add("room_name", "Ensure this value has at most 200 characters.")
	}
	return name, v.orNil()
}

// Home 首页数据。q 为空时匹配全部房间。
func (s *RoomService) Home(q string) (*HomeDTO, error) {
	rooms, err := s.roomDao.Search(q)
	if err != nil {
		return nil, fmt.Errorf("search rooms: %w", err)
	}
	count, err := s.roomDao.CountSearch(q)
	if err != nil {
		return nil, fmt.Errorf("count rooms: %w", err)
	}
	topics, err := s.topicDao.ListWithRoomCount()
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	feed, err := s.msgDao.FindByTopicKeyword(q, s.FeedLimit)
	if err != nil {
		return nil, fmt.Errorf("load feed: %w", err)
	}
	return &HomeDTO{
		Query:        q,
		Rooms:        toRoomDTOs(rooms),
		Topics:       toTopicDTOs(topics),
		RoomsCount:   count,
		RoomMessages: toMessageDTOs(feed),
	}, nil
}

// Topics 全部话题（含房间数）
func (s *RoomService) Topics() ([]TopicDTO, error) {
	topics, err := s.topicDao.ListWithRoomCount()
	if err != nil {
		return nil, err
	}
	return toTopicDTOs(topics), nil
}

// GetRoomByID 带房主与话题；不存在时返回 gorm.ErrRecordNotFound
func (s *RoomService) GetRoomByID(roomID uint64) (*models.Room, error) {
	room, err := s.roomDao.FindByID(roomID)
	if err != nil {
		return nil, fmt.Errorf("load room %d: %w", roomID, err)
	}
	return room, nil
}

// SyncParticipants 用消息记录重算参与者：没发过言的移除，发过言但缺失的补上，
// 最后刷新房间 updated_at。读后写，不加锁；与并发发言竞争时以下一次查看为准。
func (s *RoomService) SyncParticipants(roomID uint64) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		roomDao := s.roomDao.WithDB(tx)
		if _, err := roomDao.FindByID(roomID); err != nil {
			return fmt.Errorf("load room %d: %w", roomID, err)
		}

		authors, err := s.msgDao.WithDB(tx).DistinctSenderIDs(roomID)
		if err != nil {
			return err
		}
		if err := roomDao.RetainParticipants(roomID, authors); err != nil {
			return err
		}

		current, err := roomDao.ParticipantIDs(roomID)
		if err != nil {
			return err
		}
		have := make(map[uint64]struct{}, len(current))
		for _, id := range current {
			have[id] = struct{}{}
		}
		for _, uid := range authors {
			if _, ok := have[uid]; ok {
				continue
			}
			if err := roomDao.AddParticipant(roomID, uid); err != nil {
				return err
			}
		}

		return roomDao.Touch(roomID)
	})
}

// ViewRoom 房间详情；每次查看都会先重算参与者
func (s *RoomService) ViewRoom(roomID uint64) (*RoomPageDTO, error) {
	if err := s.SyncParticipants(roomID); err != nil {
		return nil, err
	}

	room, err := s.GetRoomByID(roomID)
	if err != nil {
		return nil, err
	}
	msgs, err := s.msgDao.FindByRoomID(roomID)
	if err != nil {
		return nil, err
	}
	participants, err := s.roomDao.ListParticipants(roomID)
	if err != nil {
		return nil, err
	}
	return &RoomPageDTO{
		Room:         ToRoomDTO(room),
		RoomMessages: toMessageDTOs(msgs),
		Participants: toUserBriefDTOs(participants),
	}, nil
}

// CreateRoom 话题查找/创建 + 房间创建在同一事务内
func (s *RoomService) CreateRoom(hostID uint64, req RoomReq) (*models.Room, error) {
	name, err := validateRoomReq(req)
	if err != nil {
		return nil, err
	}
	topicName := NormalizeTopicName(req.Topic)

	room := &models.Room{
		HostID:      hostID,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		topic, err := s.topicDao.WithDB(tx).GetOrCreate(topicName)
		if err != nil {
			return fmt.Errorf("get or create topic %q: %w", topicName, err)
		}
		room.TopicID = topic.ID
		return s.roomDao.WithDB(tx).Create(room)
	})
	if err != nil {
		return nil, err
	}
	return room, nil
}

// CheckHost 加载房间并确认操作者是房主，否则返回 ErrForbidden
func (s *RoomService) CheckHost(actorID, roomID uint64) (*models.Room, error) {
	room, err := s.GetRoomByID(roomID)
	if err != nil {
		return nil, err
	}
	if room.HostID != actorID {
		return nil, ErrForbidden
	}
	return room, nil
}

// RoomForm 编辑页面需要的数据；roomID 为 0 时是创建页面
func (s *RoomService) RoomForm(actorID, roomID uint64) (*RoomFormDTO, error) {
	out := &RoomFormDTO{}
	if roomID != 0 {
		room, err := s.CheckHost(actorID, roomID)
		if err != nil {
			return nil, err
		}
		out.Room = ToRoomDTO(room)
	}
	topics, err := s.Topics()
	if err != nil {
		return nil, err
	}
	out.Topics = topics
	return out, nil
}

// UpdateRoom 仅房主可编辑；覆盖话题、名称、描述
func (s *RoomService) UpdateRoom(actorID, roomID uint64, req RoomReq) error {
	if _, err := s.CheckHost(actorID, roomID); err != nil {
		return err
	}
	name, err := validateRoomReq(req)
	if err != nil {
		return err
	}
	topicName := NormalizeTopicName(req.Topic)

	return s.DB.Transaction(func(tx *gorm.DB) error {
		topic, err := s.topicDao.WithDB(tx).GetOrCreate(topicName)
		if err != nil {
			return fmt.Errorf("get or create topic %q: %w", topicName, err)
		}
		return s.roomDao.WithDB(tx).UpdateFields(roomID, map[string]any{
			"name":        name,
			"topic_id":    topic.ID,
			"description": strings.TrimSpace(req.Description),
		})
	})
}

// DeleteRoom 仅房主可删除；消息、参与者、房间在同一事务内删除
func (s *RoomService) DeleteRoom(actorID, roomID uint64) error {
	if _, err := s.CheckHost(actorID, roomID); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.msgDao.WithDB(tx).DeleteByRoomID(roomID); err != nil {
			return err
		}
		roomDao := s.roomDao.WithDB(tx)
		if err := roomDao.RetainParticipants(roomID, nil); err != nil {
			return err
		}
		return roomDao.Delete(roomID)
	})
}
