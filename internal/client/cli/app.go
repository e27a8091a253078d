// Package cli is the terminal front end of the client facade.
package cli

import (
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/urfave/cli/v2"
	"github.com/yigit/coursedesk/internal/client"
	"github.com/yigit/coursedesk/internal/pkg/logger"
)

type session struct {
	svc *client.AppService
	api *client.APIClient
	db  *sql.DB
}

// NewApp builds the command tree. Output and notifications go to out.
func NewApp(cfg client.Config, out io.Writer) *cli.App {
	s := &session{}

	app := &cli.App{
		Name:   "coursedesk",
		Usage:  "manage your courses from the terminal",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "api-url", Value: cfg.APIURL, Usage: "backend base URL"},
			&cli.StringFlag{Name: "session-db", Value: cfg.SessionDB, Usage: "SQLite file holding the session"},
			&cli.StringFlag{Name: "profile", Value: cfg.Profile, Usage: "session profile, one per terminal tab"},
			&cli.StringFlag{Name: "token", EnvVars: []string{"COURSEDESK_TOKEN"}, Usage: "access token for protected backends"},
			&cli.StringFlag{Name: "log-level", Value: cfg.LogLevel},
		},
		Before: func(c *cli.Context) error {
			lgr := logger.New(logger.Config{Level: logger.LogLevel(c.String("log-level")), Pretty: true, Output: c.App.ErrWriter})

			storage, db, err := client.OpenSQLiteStorage(c.Context, c.String("session-db"), c.String("profile"))
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			s.db = db
			s.api = client.NewAPIClient(c.String("api-url"), &http.Client{Timeout: cfg.Timeout})

			nav := client.NavigatorFunc(func(path string) {
				lgr.Debug().Str("path", path).Msg("Navigate")
			})
			s.svc = client.NewAppService(c.Context, s.api, storage, client.NewWriterNotifier(out), nav, lgr)
			if token := c.String("token"); token != "" {
				s.api.SetToken(token)
			}
			return nil
		},
		After: func(c *cli.Context) error {
			if s.db != nil {
				return s.db.Close()
			}
			return nil
		},
		Commands: []*cli.Command{
			s.loginCommand(),
			s.registerCommand(),
			s.logoutCommand(),
			s.whoamiCommand(),
			s.coursesCommand(),
		},
	}
	return app
}

func failed() error { return cli.Exit("", 1) }

func (s *session) loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "sign in with email and password",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", Required: true},
		},
		Action: func(c *cli.Context) error {
			res := s.svc.SignIn(c.Context, c.String("email"), c.String("password"))
			if !res.OK {
				return failed()
			}
			printToken(c, res.Value.Token)
			return nil
		},
	}
}

func (s *session) registerCommand() *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "create an account and sign in",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Required: true},
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", Required: true},
		},
		Action: func(c *cli.Context) error {
			res := s.svc.SignUp(c.Context, client.Identity{
				Name:     c.String("name"),
				Email:    c.String("email"),
				Password: c.String("password"),
			})
			if !res.OK {
				return failed()
			}
			printToken(c, res.Value.Token)
			return nil
		},
	}
}

func (s *session) logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "forget the stored session",
		Action: func(c *cli.Context) error {
			s.svc.Logout(c.Context)
			return nil
		},
	}
}

func (s *session) whoamiCommand() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "show the signed-in user",
		Action: func(c *cli.Context) error {
			if !s.svc.IsLoggedIn() {
				fmt.Fprintln(c.App.Writer, "not signed in")
				return nil
			}
			id := s.svc.UserData().Get()
			fmt.Fprintf(c.App.Writer, "%s <%s> %s\n", id.Name, id.Email, id.ID)
			return nil
		},
	}
}

func courseFlags(required bool) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "title", Required: required},
		&cli.StringSliceFlag{Name: "teacher", Usage: "repeat for several teachers"},
		&cli.StringSliceFlag{Name: "class", Usage: "repeat for several classes"},
		&cli.StringFlag{Name: "start", Usage: "start time, e.g. 09:00"},
		&cli.StringFlag{Name: "end", Usage: "end time, e.g. 10:00"},
		&cli.StringFlag{Name: "owner", Usage: "owner id, defaults to the signed-in user"},
	}
}

func draftFrom(c *cli.Context) client.CourseDraft {
	teachers := c.StringSlice("teacher")
	if teachers == nil {
		teachers = []string{}
	}
	classes := c.StringSlice("class")
	if classes == nil {
		classes = []string{}
	}
	return client.CourseDraft{
		UserID:    c.String("owner"),
		Title:     c.String("title"),
		Teachers:  teachers,
		Classes:   classes,
		StartTime: c.String("start"),
		EndTime:   c.String("end"),
	}
}

func (s *session) coursesCommand() *cli.Command {
	return &cli.Command{
		Name:  "courses",
		Usage: "manage the courses of the signed-in user",
		Before: func(c *cli.Context) error {
			if !s.svc.IsLoggedIn() {
				return cli.Exit("not signed in, run login first", 1)
			}
			return nil
		},
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list courses",
				Action: func(c *cli.Context) error {
					res := s.svc.ListCourses(c.Context)
					if !res.OK {
						return failed()
					}
					for _, course := range res.Value {
						fmt.Fprintf(c.App.Writer, "%s\t%s\t%s-%s\t%s\t%s\n",
							course.ID, course.Title, course.StartTime, course.EndTime,
							strings.Join(course.Teachers, ","), strings.Join(course.Classes, ","))
					}
					return nil
				},
			},
			{
				Name:  "add",
				Usage: "create a course",
				Flags: courseFlags(true),
				Action: func(c *cli.Context) error {
					res := s.svc.CreateCourse(c.Context, draftFrom(c))
					if !res.OK {
						return failed()
					}
					s.svc.Notify("Course "+res.Value.Title+" created", false)
					fmt.Fprintln(c.App.Writer, res.Value.ID)
					return nil
				},
			},
			{
				Name:      "update",
				Usage:     "replace a course",
				ArgsUsage: "<course-id>",
				Flags:     courseFlags(false),
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("expected exactly one course id", 2)
					}
					res := s.svc.UpdateCourse(c.Context, c.Args().First(), draftFrom(c))
					if !res.OK {
						return failed()
					}
					s.svc.Notify("Course "+res.Value.Title+" updated", false)
					return nil
				},
			},
			{
				Name:      "rm",
				Usage:     "delete a course",
				ArgsUsage: "<course-id>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("expected exactly one course id", 2)
					}
					res := s.svc.DeleteCourse(c.Context, c.Args().First())
					if !res.OK {
						return failed()
					}
					s.svc.Notify("Course "+res.Value.Title+" deleted", false)
					return nil
				},
			},
		},
	}
}

func printToken(c *cli.Context, token string) {
	if token == "" {
		return
	}
	fmt.Fprintf(c.App.Writer, "export COURSEDESK_TOKEN=%s\n", token)
}
