package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wip-project/wipcli/internal/client/api"
	"github.com/wip-project/wipcli/internal/common"
)

// EditProfile prompts for the editable profile fields, keeping the current
// value when the user enters an empty line, and submits the update. A new
// password is optional; leaving it empty keeps the old one.
func (a *App) EditProfile(ctx context.Context) error {
	cur := a.sess.Current()
	if cur == nil {
		printlnFn("Not logged in.")
		return nil
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("Name [%s]", cur.Name), os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, fmt.Sprintf("Email [%s]", cur.Email), os.Stdout)
	if err != nil {
		return err
	}
	company, err := getSimpleText(a.reader, fmt.Sprintf("Company name [%s]", cur.CompanyName), os.Stdout)
	if err != nil {
		return err
	}
	prefs, err := getSimpleText(a.reader, "Preferences (empty keeps current)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("New password (empty keeps current)", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	update := api.ProfileUpdate{
		Name:        orDefault(name, cur.Name),
		Email:       orDefault(email, cur.Email),
		CompanyName: orDefault(company, cur.CompanyName),
		Preferences: orDefault(prefs, cur.Preferences),
		Password:    string(password),
	}

	if err := a.auth.UpdateProfile(ctx, update); err != nil {
		printlnFn("Profile update failed:", err.Error())
		return err
	}
	printlnFn("Profile updated.")
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Picture uploads the file at path as the user's profile picture.
func (a *App) Picture(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		printlnFn("Cannot open file:", err.Error())
		return err
	}
	defer f.Close()

	if err := a.auth.UploadProfilePicture(ctx, filepath.Base(path), f); err != nil {
		printlnFn("Upload failed:", err.Error())
		return err
	}
	printlnFn("Profile picture updated.")
	return nil
}
