package service

import (
	"errors"
	"testing"

	"github.com/cydxin/studybud/models"
)

func TestMessageService_PostAddsParticipant(t *testing.T) {
	s := newTestService(t)
	us := NewUserService(s)
	rs := NewRoomService(s)
	ms := NewMessageService(s)
	alice := mustRegister(t, us, "alice")
	bob := mustRegister(t, us, "bob")
	room := mustCreateRoom(t, rs, alice.ID, "physics", "Quantum", "")

	mustPost(t, ms, room.ID, bob.ID, "hello")
	mustPost(t, ms, room.ID, bob.ID, "again")

	var n int64
	s.DB.Model(&models.RoomParticipant{}).Where("room_id = ? AND user_id = ?", room.ID, bob.ID).Count(&n)
	if n != 1 {
		t.Fatalf("poster should be a participant exactly once, got %d", n)
	}

	if _, err := ms.PostMessage(9999, bob.ID, "lost"); err == nil {
		t.Fatalf("expected error for missing room")
	}
	s.DB.Model(&models.Message{}).Where("room_id = ?", 9999).Count(&n)
	if n != 0 {
		t.Fatalf("message for missing room must not persist")
	}
}

func TestMessageService_BlankBody(t *testing.T) {
	s := newTestService(t)
	us := NewUserService(s)
	rs := NewRoomService(s)
	ms := NewMessageService(s)
	alice := mustRegister(t, us, "alice")
	room := mustCreateRoom(t, rs, alice.ID, "physics", "Quantum", "")

	_, err := ms.PostMessage(room.ID, alice.ID, "   ")
	fieldError(t, err, "body")

	var n int64
	s.DB.Model(&models.Message{}).Count(&n)
	if n != 0 {
		t.Fatalf("blank message must not persist, got %d", n)
	}
}

func TestMessageService_AuthorOnly(t *testing.T) {
	s := newTestService(t)
	us := NewUserService(s)
	rs := NewRoomService(s)
	ms := NewMessageService(s)
	alice := mustRegister(t, us, "alice")
	bob := mustRegister(t, us, "bob")
	room := mustCreateRoom(t, rs, alice.ID, "physics", "Quantum", "")
	msg := mustPost(t, ms, room.ID, bob.ID, "original")

	// 房主也不能改别人的消息
	if _, err := ms.UpdateMessage(alice.ID, msg.ID, "edited"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden on update, got %v", err)
	}
	if _, err := ms.DeleteMessage(alice.ID, msg.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden on delete, got %v", err)
	}

	got, err := ms.GetMessageByID(msg.ID)
	if err != nil {
		t.Fatalf("GetMessageByID: %v", err)
	}
	if got.Body != "original" {
		t.Fatalf("message must be unchanged, got %q", got.Body)
	}

	_, err = ms.UpdateMessage(bob.ID, msg.ID, "")
	fieldError(t, err, "body")

	updated, err := ms.UpdateMessage(bob.ID, msg.ID, "edited")
	if err != nil {
		t.Fatalf("UpdateMessage: %v", err)
	}
	if updated.Body != "edited" {
		t.Fatalf("expected edited, got %q", updated.Body)
	}

	roomID, err := ms.DeleteMessage(bob.ID, msg.ID)
	if err != nil {
		t.Fatalf("DeleteMessage: %v", err)
	}
	if roomID != room.ID {
		t.Fatalf("expected room %d, got %d", room.ID, roomID)
	}
	if _, err := ms.GetMessageByID(msg.ID); err == nil {
		t.Fatalf("message should be gone")
	}
}
