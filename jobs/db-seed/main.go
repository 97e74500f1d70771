package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/AlbertoHugonin/privacydashboard/pkg/user-management/pwhash"
	"github.com/AlbertoHugonin/privacydashboard/pkg/utils"
	"gopkg.in/yaml.v2"

	umUtils "github.com/AlbertoHugonin/privacydashboard/pkg/user-management/utils"

	appDB "github.com/AlbertoHugonin/privacydashboard/pkg/db/app"
	userDB "github.com/AlbertoHugonin/privacydashboard/pkg/db/dashboard-user"
)

type seedUser struct {
	Username string `yaml:"username"`
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
	Mail     string `yaml:"mail"`
	Password string `yaml:"password"`
}

type seedApp struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Consenses   []string `yaml:"consenses"`

	// usernames to create a relation for
	Users []string `yaml:"users"`
}

type seedFile struct {
	Users []seedUser `yaml:"users"`
	Apps  []seedApp  `yaml:"apps"`
}

var knownRoles = []string{userDB.ROLE_SUBJECT, userDB.ROLE_CONTROLLER, userDB.ROLE_DPO}

// Provisioning job: loads a declarative seed file and creates the users,
// apps and user-app relations it lists. Existing users are reused, so the
// job can run repeatedly against the same databases.
func main() {
	slog.Info("Starting db seed job")
	start := time.Now()

	seed, err := readSeedFile(conf.SeedFilePath)
	if err != nil {
		slog.Error("Error reading seed file", slog.String("path", conf.SeedFilePath), slog.String("error", err.Error()))
		return
	}

	userIDsByUsername := seedUsers(seed.Users)
	seedApps(seed.Apps, userIDsByUsername)

	slog.Info("Db seed job completed", slog.Duration("duration", time.Since(start)))
}

func readSeedFile(path string) (*seedFile, error) {
	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var seed seedFile
	if err := yaml.UnmarshalStrict(yamlFile, &seed); err != nil {
		return nil, err
	}
	return &seed, nil
}

func seedUsers(users []seedUser) map[string]string {
	userIDsByUsername := map[string]string{}

	for _, entry := range users {
		username := umUtils.SanitizeUsername(entry.Username)
		if !umUtils.CheckUsernameFormat(username) {
			slog.Error("Invalid username in seed file", slog.String("username", entry.Username))
			continue
		}
		if !utils.ContainsString(knownRoles, entry.Role) {
			slog.Error("Invalid role in seed file", slog.String("username", username), slog.String("role", entry.Role))
			continue
		}

		if existing, err := dashboardUserDBService.GetUserByUsername(username); err == nil {
			slog.Debug("User already exists", slog.String("username", username))
			userIDsByUsername[username] = existing.ID.Hex()
			continue
		}

		if !umUtils.CheckPasswordFormat(entry.Password) {
			slog.Error("Password in seed file does not fulfil the password rules", slog.String("username", username))
			continue
		}

		hashedPassword, err := pwhash.HashPassword(entry.Password)
		if err != nil {
			slog.Error("Error hashing password", slog.String("username", username), slog.String("error", err.Error()))
			continue
		}

		userID, err := dashboardUserDBService.AddUser(userDB.DashboardUser{
			Username: username,
			Name:     entry.Name,
			Role:     entry.Role,
			Mail:     entry.Mail,
			Password: hashedPassword,
		})
		if err != nil {
			slog.Error("Error creating user", slog.String("username", username), slog.String("error", err.Error()))
			continue
		}

		slog.Info("User created", slog.String("username", username), slog.String("role", entry.Role))
		userIDsByUsername[username] = userID
	}

	return userIDsByUsername
}

func seedApps(apps []seedApp, userIDsByUsername map[string]string) {
	for _, entry := range apps {
		if entry.Name == "" {
			slog.Error("App without name in seed file")
			continue
		}

		appID, err := appDBService.AddApp(appDB.IoTApp{
			Name:        entry.Name,
			Description: entry.Description,
			Consenses:   entry.Consenses,
		})
		if err != nil {
			slog.Error("Error creating app", slog.String("name", entry.Name), slog.String("error", err.Error()))
			continue
		}
		slog.Info("App created", slog.String("name", entry.Name), slog.String("appID", appID))

		for _, username := range entry.Users {
			username = umUtils.SanitizeUsername(username)
			userID, ok := userIDsByUsername[username]
			if !ok {
				slog.Error("App references unknown user", slog.String("app", entry.Name), slog.String("username", username))
				continue
			}

			user, err := dashboardUserDBService.GetUserByID(userID)
			if err != nil {
				slog.Error("Error loading user for relation", slog.String("username", username), slog.String("error", err.Error()))
				continue
			}

			if _, err := appDBService.AddUserAppRelation(appDB.UserAppRelation{
				UserID:    userID,
				UserName:  user.Name,
				AppID:     appID,
				AppName:   entry.Name,
				Consenses: []string{},
			}); err != nil {
				slog.Error("Error creating relation", slog.String("username", username), slog.String("app", entry.Name), slog.String("error", err.Error()))
			}
		}
	}
}
