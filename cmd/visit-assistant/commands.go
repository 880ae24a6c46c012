package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"visit-assistant/internal/handler"
	"visit-assistant/internal/handoff"
	"visit-assistant/internal/i18n"
	"visit-assistant/internal/models"
	"visit-assistant/internal/status"
	"visit-assistant/internal/templates"
)

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Add the visits listed in a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.storage.ImportFile(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("✅ %d visit(s) imported\n", n)
			return nil
		},
	}
}

func newVisitsCmd(a *app) *cobra.Command {
	var all, withoutHost bool
	var langFlag string

	cmd := &cobra.Command{
		Use:   "visits",
		Short: "List visits with their communication progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := a.language(langFlag)
			if err != nil {
				return err
			}
			now := time.Now()
			var visits []models.Visit
			switch {
			case withoutHost:
				visits = a.storage.GetVisitsWithoutHost(now)
			case all:
				visits = a.storage.GetAllVisits()
			default:
				visits = a.storage.GetUpcomingVisits(now)
			}
			printVisits(os.Stdout, visits, lang)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include past and cancelled visits")
	cmd.Flags().BoolVar(&withoutHost, "without-host", false, "only upcoming visits that still need a host")
	cmd.Flags().StringVarP(&langFlag, "lang", "l", "", "language used for dates (fr, cv)")
	return cmd
}

func newAssignHostCmd(a *app) *cobra.Command {
	var gender, phone, address string

	cmd := &cobra.Command{
		Use:   "assign-host <visit-id> <name>",
		Short: "Set the host of a visit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parseGender(gender)
			if err != nil {
				return err
			}
			host := models.Host{Name: args[1], Gender: g, Phone: phone, Address: address}
			if err := a.storage.AssignHost(args[0], host); err != nil {
				return err
			}
			fmt.Printf("✅ %s will host visit %s\n", host.Name, args[0])
			return nil
		},
	}
	cmd.Flags().StringVarP(&gender, "gender", "g", string(models.GenderMale), "male, female or couple")
	cmd.Flags().StringVarP(&phone, "phone", "p", "", "host phone number")
	cmd.Flags().StringVarP(&address, "address", "a", "", "host address")
	return cmd
}

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status <visit-id> <scheduled|cancelled|completed>",
		Short: "Change the lifecycle status of a visit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := models.VisitStatus(args[1])
			switch st {
			case models.VisitScheduled, models.VisitCancelled, models.VisitCompleted:
			default:
				return fmt.Errorf("unknown status %q", args[1])
			}
			if err := a.storage.UpdateVisitStatus(args[0], st); err != nil {
				return err
			}
			fmt.Printf("✅ Visit %s is now %s\n", args[0], st)
			return nil
		},
	}
}

func newRenderCmd(a *app) *cobra.Command {
	var langFlag string
	var copyText, markSent, send, link bool

	cmd := &cobra.Command{
		Use:   "render <visit-id> <type> <speaker|host>",
		Short: "Render the message of one type for one recipient of a visit",
		Long: `Render the message of one type for one recipient of a visit.
Types: confirmation, preparation, reminder-7, reminder-2, thanks.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := a.language(langFlag)
			if err != nil {
				return err
			}
			mt, err := parseMessageType(args[1])
			if err != nil {
				return err
			}
			role, err := parseRole(args[2])
			if err != nil {
				return err
			}

			if err := a.composer.Open(args[0], mt, role, lang); err != nil {
				return err
			}
			defer a.composer.Close()

			fmt.Println(a.composer.Text())

			switch {
			case send:
				return a.sendDirect(cmd.Context())
			case copyText && markSent:
				if err := a.composer.CopyAndMarkSent(); err != nil {
					return err
				}
				fmt.Println("\n📋 Copied and marked as sent")
			case copyText:
				if err := a.composer.Copy(); err != nil {
					return err
				}
				fmt.Println("\n📋 Copied")
			case markSent:
				if err := a.composer.MarkSent(); err != nil {
					return err
				}
				fmt.Println("\n✅ Marked as sent")
			}

			if link {
				deepLink, err := a.composer.Handoff()
				if err != nil {
					return err
				}
				printLink(os.Stdout, deepLink)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&langFlag, "lang", "l", "", "message language (fr, cv)")
	cmd.Flags().BoolVarP(&copyText, "copy", "c", false, "copy the message to the clipboard")
	cmd.Flags().BoolVarP(&markSent, "mark-sent", "m", false, "record the message as sent")
	cmd.Flags().BoolVar(&link, "link", false, "print the WhatsApp link of the recipient")
	cmd.Flags().BoolVar(&send, "send", false, "send directly through the linked WhatsApp device")
	return cmd
}

func newHostRequestCmd(a *app) *cobra.Command {
	var langFlag string
	var copyText, link bool

	cmd := &cobra.Command{
		Use:   "host-request",
		Short: "Render the request for hosts covering every upcoming visit without one",
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := a.language(langFlag)
			if err != nil {
				return err
			}
			visits := a.storage.GetVisitsWithoutHost(time.Now())
			if len(visits) == 0 {
				fmt.Println("Every upcoming visit has a host.")
				return nil
			}

			profile, _ := a.storage.GetProfile()
			req := handler.NewHostRequest(a.templates, profile, handoff.SystemClipboard{}, visits, lang)
			fmt.Println(req.Text())

			if copyText {
				if err := req.Copy(); err != nil {
					return err
				}
				fmt.Println("\n📋 Copied")
			}
			if link {
				deepLink, err := req.Handoff()
				if err != nil {
					return err
				}
				printLink(os.Stdout, deepLink)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&langFlag, "lang", "l", "", "message language (fr, cv)")
	cmd.Flags().BoolVarP(&copyText, "copy", "c", false, "copy the message to the clipboard")
	cmd.Flags().BoolVar(&link, "link", false, "print the WhatsApp link of the hospitality overseer")
	return cmd
}

func newTemplatesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List, show, override or reset message templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, key := range templates.Keys() {
				_, custom := a.templates.Get(key.Language, key.Type, key.Role)
				marker := ""
				if custom {
					marker = " (custom)"
				}
				fmt.Printf("%s%s\n", key, marker)
			}
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show <lang> <type> <role>",
		Short: "Print a template",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseKey(args)
			if err != nil {
				return err
			}
			text, _ := a.templates.Get(key.Language, key.Type, key.Role)
			fmt.Println(text)
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <lang> <type> <role> <file>",
		Short: "Override a template with the content of a file (- for stdin)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseKey(args[:3])
			if err != nil {
				return err
			}
			text, err := readText(args[3])
			if err != nil {
				return err
			}
			if err := a.templates.Save(key.Language, key.Type, key.Role, text); err != nil {
				return err
			}
			fmt.Printf("✅ Template %s saved\n", key)
			return nil
		},
	}

	reset := &cobra.Command{
		Use:   "reset <lang> <type> <role>",
		Short: "Go back to the built-in template",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseKey(args)
			if err != nil {
				return err
			}
			if err := a.templates.Delete(key.Language, key.Type, key.Role); err != nil {
				return err
			}
			fmt.Printf("✅ Template %s reset\n", key)
			return nil
		},
	}

	cmd.AddCommand(show, set, reset)
	return cmd
}

func newProfileCmd(a *app) *cobra.Command {
	var name, overseer, phone string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update the congregation profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, _ := a.storage.GetProfile()
			changed := false
			if cmd.Flags().Changed("name") {
				profile.Name, changed = name, true
			}
			if cmd.Flags().Changed("overseer") {
				profile.HospitalityOverseer, changed = overseer, true
			}
			if cmd.Flags().Changed("phone") {
				profile.HospitalityOverseerPhone, changed = phone, true
			}
			if changed {
				if err := a.storage.SaveProfile(profile); err != nil {
					return err
				}
				fmt.Println("✅ Profile saved")
			}
			fmt.Printf("Congregation: %s\n", profile.Name)
			fmt.Printf("Hospitality overseer: %s\n", profile.HospitalityOverseer)
			fmt.Printf("Phone: %s\n", profile.HospitalityOverseerPhone)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "congregation name")
	cmd.Flags().StringVar(&overseer, "overseer", "", "hospitality overseer name")
	cmd.Flags().StringVar(&phone, "phone", "", "hospitality overseer phone")
	return cmd
}

func newLinkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "link <phone>",
		Short: "Print the WhatsApp chat link and QR code for a phone number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deepLink, err := handoff.WhatsAppLink(args[0])
			if err != nil {
				return err
			}
			printLink(os.Stdout, deepLink)
			return nil
		},
	}
}

func newLoginCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Link this assistant to a WhatsApp account for direct sending",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.whatsapp == nil {
				return handler.ErrNoSender
			}
			if err := a.whatsapp.Connect(); err != nil {
				return err
			}
			fmt.Println("✅ Connected to WhatsApp!")
			return nil
		},
	}
}

// sendDirect connects the linked device if needed, then sends the open message
func (a *app) sendDirect(ctx context.Context) error {
	if a.whatsapp == nil {
		return handler.ErrNoSender
	}
	if !a.whatsapp.IsLinked() {
		return errors.New("no WhatsApp device linked, run the login command first")
	}
	if !a.connected {
		if err := a.whatsapp.Connect(); err != nil {
			return err
		}
		a.connected = true
	}
	if err := a.composer.SendDirect(ctx); err != nil {
		return err
	}
	fmt.Println("\n✅ Sent and marked as sent")
	return nil
}

// language returns the flag value, or the configured default when empty
func (a *app) language(flag string) (models.Language, error) {
	if flag == "" {
		return a.cfg.DefaultLanguage, nil
	}
	lang, ok := models.ParseLanguage(flag)
	if !ok {
		return "", fmt.Errorf("unknown language %q", flag)
	}
	return lang, nil
}

func printVisits(w io.Writer, visits []models.Visit, lang models.Language) {
	if len(visits) == 0 {
		fmt.Fprintln(w, "\nNo visits found.")
		return
	}

	loc := i18n.For(lang)
	fmt.Fprintf(w, "\n📋 Visits (%d total):\n", len(visits))
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for i := range visits {
		v := &visits[i]
		fmt.Fprintf(w, "ID: %s\n", v.ID)
		fmt.Fprintf(w, "Date: %s %s\n", loc.LongDate(v.Date), v.Time)
		fmt.Fprintf(w, "Speaker: %s\n", v.SpeakerName)
		fmt.Fprintf(w, "Host: %s\n", v.HostName)
		fmt.Fprintf(w, "Status: %s\n", v.Status)
		fmt.Fprintf(w, "Speaker messages: %s\n", progressLine(v, models.RoleSpeaker))
		if v.HasHost() {
			fmt.Fprintf(w, "Host messages: %s\n", progressLine(v, models.RoleHost))
		}
		fmt.Fprintln(w, strings.Repeat("-", 60))
	}
}

func progressLine(v *models.Visit, role models.Role) string {
	done, total := status.Progress(v, role)
	line := fmt.Sprintf("%d/%d", done, total)
	if next, ok := status.NextStep(v, role); ok {
		line += fmt.Sprintf(" (next: %s)", next)
	}
	return line
}

func printLink(w io.Writer, deepLink string) {
	fmt.Fprintf(w, "\n🔗 %s\n", deepLink)
	qr, err := handoff.QRCode(deepLink)
	if err != nil {
		fmt.Fprintf(w, "❌ %v\n", err)
		return
	}
	fmt.Fprintln(w, qr)
}

func readText(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read template: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func parseKey(args []string) (models.TemplateKey, error) {
	lang, ok := models.ParseLanguage(args[0])
	if !ok {
		return models.TemplateKey{}, fmt.Errorf("unknown language %q", args[0])
	}
	mt, err := parseMessageType(args[1])
	if err != nil {
		return models.TemplateKey{}, err
	}
	role, err := parseRole(args[2])
	if err != nil {
		return models.TemplateKey{}, err
	}
	key := models.TemplateKey{Language: lang, Type: mt, Role: role}
	if _, ok := templates.Default(key); !ok {
		return models.TemplateKey{}, fmt.Errorf("no template for %s", key)
	}
	return key, nil
}

func parseMessageType(s string) (models.MessageType, error) {
	if s == string(models.MessageHostRequest) {
		return models.MessageHostRequest, nil
	}
	for _, mt := range models.MessageTypes {
		if string(mt) == s {
			return mt, nil
		}
	}
	return "", fmt.Errorf("unknown message type %q", s)
}

func parseRole(s string) (models.Role, error) {
	switch models.Role(s) {
	case models.RoleSpeaker, models.RoleHost:
		return models.Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func parseGender(s string) (models.Gender, error) {
	switch models.Gender(s) {
	case models.GenderMale, models.GenderFemale, models.GenderCouple:
		return models.Gender(s), nil
	}
	return "", fmt.Errorf("unknown gender %q", s)
}
