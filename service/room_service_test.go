package service

import (
	"errors"
	"sort"
	"testing"

	"github.com/cydxin/studybud/models"
)

func TestNormalizeTopicName(t *testing.T) {
	tests := map[string]string{
		"":                 "General",
		"   ":              "General",
		"physics":          "Physics",
		"machine learning": "Machine Learning",
		"  python  ":       "Python",
		"MACHINE learning": "Machine Learning",
		"3d printing":      "3D Printing",
		"o'neil":           "O'Neil",
		"c++ / go":         "C++ / Go",
	}
	for in, want := range tests {
		if got := NormalizeTopicName(in); got != want {
			t.Errorf("NormalizeTopicName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRoomService_CreateRoom(t *testing.T) {
	s := newTestService(t)
	us := NewUserService(s)
	rs := NewRoomService(s)
	alice := mustRegister(t, us, "alice")

	r1 := mustCreateRoom(t, rs, alice.ID, "physics", "Quantum", "waves")
	r2 := mustCreateRoom(t, rs, alice.ID, "Physics", "Relativity", "")
	if r1.TopicID != r2.TopicID {
		t.Fatalf("expected topic reuse, got %d and %d", r1.TopicID, r2.TopicID)
	}

	r3 := mustCreateRoom(t, rs, alice.ID, "", "Chat", "")
	room, err := rs.GetRoomByID(r3.ID)
	if err != nil {
		t.Fatalf("GetRoomByID: %v", err)
	}
	if room.Topic.Name != "General" {
		t.Fatalf("blank topic should fall back to General, got %q", room.Topic.Name)
	}
	if room.HostID != alice.ID || room.Host.Username != "alice" {
		t.Fatalf("unexpected host: %+v", room.Host)
	}

	_, err = rs.CreateRoom(alice.ID, RoomReq{Topic: "physics", Name: "  "})
	fieldError(t, err, "room_name")

	topics, err := rs.Topics()
	if err != nil {
		t.Fatalf("Topics: %v", err)
	}
	counts := map[string]int64{}
	for _, tp := range topics {
		counts[tp.Name] = tp.RoomCount
	}
	if counts["Physics"] != 2 || counts["General"] != 1 || len(counts) != 2 {
		t.Fatalf("unexpected topic counts: %v", counts)
	}
}

func TestRoomService_HomeSearch(t *testing.T) {
	s := newTestService(t)
	us := NewUserService(s)
	rs := NewRoomService(s)
	ms := NewMessageService(s)
	alice := mustRegister(t, us, "alice")

	quantum := mustCreateRoom(t, rs, alice.ID, "physics", "Quantum", "")
	mustCreateRoom(t, rs, alice.ID, "python", "Snakes", "pythonic physics sims")
	mustCreateRoom(t, rs, alice.ID, "cooking", "Pasta", "")
	mustPost(t, ms, quantum.ID, alice.ID, "hello")

	home, err := rs.Home("PHYS")
	if err != nil {
		t.Fatalf("Home: %v", err)
	}
	names := make([]string, 0, len(home.Rooms))
	for _, r := range home.Rooms {
		names = append(names, r.Name)
	}
	sort.Strings(names)
	if len(names) != 2 || names[0] != "Quantum" || names[1] != "Snakes" {
		t.Fatalf("expected Quantum and Snakes, got %v", names)
	}
	if home.RoomsCount != 2 {
		t.Fatalf("expected rooms_count 2, got %d", home.RoomsCount)
	}
	if len(home.Topics) != 3 {
		t.Fatalf("topics are not filtered by q, got %d", len(home.Topics))
	}
	// 动态流只按话题名过滤
	if len(home.RoomMessages) != 1 || home.RoomMessages[0].RoomName != "Quantum" {
		t.Fatalf("unexpected feed: %+v", home.RoomMessages)
	}

	home, err = rs.Home("zzz")
	if err != nil {
		t.Fatalf("Home: %v", err)
	}
	if len(home.Rooms) != 0 || home.RoomsCount != 0 || len(home.RoomMessages) != 0 {
		t.Fatalf("expected no results, got %+v", home)
	}

	home, err = rs.Home("")
	if err != nil {
		t.Fatalf("Home: %v", err)
	}
	if home.RoomsCount != 3 {
		t.Fatalf("empty q should match all rooms, got %d", home.RoomsCount)
	}

	// % 和 _ 按字面量匹配
	home, err = rs.Home("%")
	if err != nil {
		t.Fatalf("Home: %v", err)
	}
	if home.RoomsCount != 0 {
		t.Fatalf("literal %% should not match, got %d", home.RoomsCount)
	}
}

func TestRoomService_FeedLimit(t *testing.T) {
	s := newTestService(t)
	s.FeedLimit = 2
	us := NewUserService(s)
	rs := NewRoomService(s)
	ms := NewMessageService(s)
	alice := mustRegister(t, us, "alice")
	room := mustCreateRoom(t, rs, alice.ID, "physics", "Quantum", "")
	for _, body := range []string{"a", "b", "c"} {
		mustPost(t, ms, room.ID, alice.ID, body)
	}

	home, err := rs.Home("")
	if err != nil {
		t.Fatalf("Home: %v", err)
	}
	if len(home.RoomMessages) != 2 {
		t.Fatalf("expected feed capped at 2, got %d", len(home.RoomMessages))
	}
}

func participantNames(page *RoomPageDTO) []string {
	out := make([]string, 0, len(page.Participants))
	for _, p := range page.Participants {
		out = append(out, p.Username)
	}
	sort.Strings(out)
	return out
}

func TestRoomService_ViewRoomSyncsParticipants(t *testing.T) {
	s := newTestService(t)
	us := NewUserService(s)
	rs := NewRoomService(s)
	ms := NewMessageService(s)
	alice := mustRegister(t, us, "alice")
	bob := mustRegister(t, us, "bob")
	carol := mustRegister(t, us, "carol")

	room := mustCreateRoom(t, rs, alice.ID, "physics", "Quantum", "")

	page, err := rs.ViewRoom(room.ID)
	if err != nil {
		t.Fatalf("ViewRoom: %v", err)
	}
	if len(page.Participants) != 0 {
		t.Fatalf("host without messages is not a participant, got %v", participantNames(page))
	}

	mustPost(t, ms, room.ID, bob.ID, "first")
	m2 := mustPost(t, ms, room.ID, carol.ID, "second")
	mustPost(t, ms, room.ID, bob.ID, "third")

	page, err = rs.ViewRoom(room.ID)
	if err != nil {
		t.Fatalf("ViewRoom: %v", err)
	}
	if got := participantNames(page); len(got) != 2 || got[0] != "bob" || got[1] != "carol" {
		t.Fatalf("expected bob and carol, got %v", got)
	}
	if len(page.RoomMessages) != 3 || page.RoomMessages[0].Body != "first" || page.RoomMessages[2].Body != "third" {
		t.Fatalf("messages should be oldest first: %+v", page.RoomMessages)
	}

	// 删除 carol 唯一的消息后，下一次查看把她移出参与者
	if _, err := ms.DeleteMessage(carol.ID, m2.ID); err != nil {
		t.Fatalf("DeleteMessage: %v", err)
	}
	page, err = rs.ViewRoom(room.ID)
	if err != nil {
		t.Fatalf("ViewRoom: %v", err)
	}
	if got := participantNames(page); len(got) != 1 || got[0] != "bob" {
		t.Fatalf("expected only bob, got %v", got)
	}

	// 参与者行被外部删掉时，查看会补回
	if err := s.DB.Where("room_id = ?", room.ID).Delete(&models.RoomParticipant{}).Error; err != nil {
		t.Fatalf("delete participants: %v", err)
	}
	page, err = rs.ViewRoom(room.ID)
	if err != nil {
		t.Fatalf("ViewRoom: %v", err)
	}
	if got := participantNames(page); len(got) != 1 || got[0] != "bob" {
		t.Fatalf("expected bob restored, got %v", got)
	}

	if _, err := rs.ViewRoom(9999); err == nil {
		t.Fatalf("expected error for missing room")
	}
}

func TestRoomService_HostOnly(t *testing.T) {
	s := newTestService(t)
	us := NewUserService(s)
	rs := NewRoomService(s)
	alice := mustRegister(t, us, "alice")
	bob := mustRegister(t, us, "bob")
	room := mustCreateRoom(t, rs, alice.ID, "physics", "Quantum", "waves")

	if err := rs.UpdateRoom(bob.ID, room.ID, RoomReq{Topic: "x", Name: "Hijacked"}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden on update, got %v", err)
	}
	if err := rs.DeleteRoom(bob.ID, room.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden on delete, got %v", err)
	}
	if _, err := rs.RoomForm(bob.ID, room.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden on form, got %v", err)
	}

	got, err := rs.GetRoomByID(room.ID)
	if err != nil {
		t.Fatalf("GetRoomByID: %v", err)
	}
	if got.Name != "Quantum" || got.Topic.Name != "Physics" {
		t.Fatalf("room must be unchanged, got %+v", got)
	}

	if err := rs.UpdateRoom(alice.ID, room.ID, RoomReq{Topic: "quantum physics", Name: "Qubits", Description: ""}); err != nil {
		t.Fatalf("UpdateRoom: %v", err)
	}
	got, err = rs.GetRoomByID(room.ID)
	if err != nil {
		t.Fatalf("GetRoomByID: %v", err)
	}
	if got.Name != "Qubits" || got.Topic.Name != "Quantum Physics" || got.Description != "" {
		t.Fatalf("unexpected room after update: %+v", got)
	}
}

func TestRoomService_DeleteRoomCascades(t *testing.T) {
	s := newTestService(t)
	us := NewUserService(s)
	rs := NewRoomService(s)
	ms := NewMessageService(s)
	alice := mustRegister(t, us, "alice")
	bob := mustRegister(t, us, "bob")

	room := mustCreateRoom(t, rs, alice.ID, "physics", "Quantum", "")
	other := mustCreateRoom(t, rs, alice.ID, "physics", "Other", "")
	mustPost(t, ms, room.ID, bob.ID, "hi")
	mustPost(t, ms, other.ID, bob.ID, "keep me")

	if err := rs.DeleteRoom(alice.ID, room.ID); err != nil {
		t.Fatalf("DeleteRoom: %v", err)
	}
	if _, err := rs.GetRoomByID(room.ID); err == nil {
		t.Fatalf("room should be gone")
	}

	var msgs, parts int64
	s.DB.Model(&models.Message{}).Where("room_id = ?", room.ID).Count(&msgs)
	s.DB.Model(&models.RoomParticipant{}).Where("room_id = ?", room.ID).Count(&parts)
	if msgs != 0 || parts != 0 {
		t.Fatalf("orphans left: messages=%d participants=%d", msgs, parts)
	}

	s.DB.Model(&models.Message{}).Where("room_id = ?", other.ID).Count(&msgs)
	if msgs != 1 {
		t.Fatalf("other room messages must survive, got %d", msgs)
	}

	// 话题不随房间删除
	topics, err := rs.Topics()
	if err != nil {
		t.Fatalf("Topics: %v", err)
	}
	if len(topics) != 1 || topics[0].RoomCount != 1 {
		t.Fatalf("unexpected topics: %+v", topics)
	}
}
