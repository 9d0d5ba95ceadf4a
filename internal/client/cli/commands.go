package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/ivanosipov/wordvault/internal/client/api"
	"github.com/ivanosipov/wordvault/internal/common"
)

func (a *App) Register(ctx context.Context) {

	userName, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	defer common.WipeByteArray(password)

	err = a.api.Register(ctx, userName, string(password))
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			log.Printf("Username already registered")
			return
		}
		log.Printf("Registration unsuccessful: %s", err.Error())
		return
	}

	log.Printf("Registered, you can now login")
}

func (a *App) Login(ctx context.Context) {

	userName, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	defer common.WipeByteArray(password)

	err = a.api.Login(ctx, userName, string(password))
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return
	}

	a.userName = userName
	log.Printf("Login successful")
}

func (a *App) Logout(ctx context.Context) {
	a.api.Logout()
	a.userName = ""
	log.Printf("Logged out")
}

func (a *App) AddWord(ctx context.Context) {

	word, err := GetSimpleText(a.reader, "Enter word", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	positionText, err := GetSimpleText(a.reader, "Enter position (integer)", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	position, err := strconv.ParseInt(positionText, 10, 64)
	if err != nil {
		log.Printf("position must be an integer")
		return
	}

	if err := a.api.AddWord(ctx, word, position); err != nil {
		log.Printf("Add unsuccessful: %s", err.Error())
		return
	}

	log.Printf("Word added")
}

func (a *App) List(ctx context.Context) {

	list, err := a.api.ListWords(ctx)
	if err != nil {
		log.Printf("List unsuccessful: %s", err.Error())
		return
	}

	if len(list) == 0 {
		fmt.Fprintln(a.out, "(empty list)")
		return
	}

	for _, w := range list {
		fmt.Fprintf(a.out, "%6d  %6d  %s\n", w.ID, w.Position, w.Word)
	}
}

// parsePositionUpdates parses reorder input of the form "id=position",
// space-separated, e.g. "3=1 1=2 7=3".
func parsePositionUpdates(line string) ([]api.PositionUpdate, error) {

	fields := strings.Fields(line)
	updates := make([]api.PositionUpdate, 0, len(fields))

	for _, f := range fields {
		idText, posText, found := strings.Cut(f, "=")
		if !found {
			return nil, fmt.Errorf("invalid pair %q, expected id=position", f)
		}
		id, err := strconv.ParseInt(idText, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id in %q", f)
		}
		pos, err := strconv.ParseInt(posText, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid position in %q", f)
		}
		updates = append(updates, api.PositionUpdate{ID: id, Position: pos})
	}

	return updates, nil
}

func (a *App) Reorder(ctx context.Context) {

	line, err := GetSimpleText(a.reader, "Enter id=position pairs separated by spaces (use 'list' to see ids)", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	updates, err := parsePositionUpdates(line)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if len(updates) == 0 {
		log.Printf("nothing to reorder")
		return
	}

	if err := a.api.ReorderWords(ctx, updates); err != nil {
		log.Printf("Reorder unsuccessful: %s", err.Error())
		return
	}

	log.Printf("Words reordered")
}

func (a *App) Delete(ctx context.Context) {

	positionText, err := GetSimpleText(a.reader, "Enter position to delete", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	position, err := strconv.ParseInt(positionText, 10, 64)
	if err != nil {
		log.Printf("position must be an integer")
		return
	}

	err = a.api.DeleteWord(ctx, position)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			log.Printf("No word at that position")
			return
		}
		log.Printf("Delete unsuccessful: %s", err.Error())
		return
	}

	log.Printf("Word deleted")
}
