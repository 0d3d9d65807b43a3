package handlers

import (
	"net/http"
	"strings"

	"yatube/auth"
	"yatube/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type SignupRequest struct {
	Username string `form:"username"`
	Email    string `form:"email"`
	Name     string `form:"name"`
	Password string `form:"password"`
}

type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
	OtpCode  string `form:"otp"` // only checked for accounts with 2FA
	Next     string `form:"next"`
}

func SignupForm(c *gin.Context) {
	render(c, http.StatusOK, "signup.tmpl", gin.H{"form": SignupRequest{}, "errors": map[string]string{}})
}

func Signup(c *gin.Context) {
	form := SignupRequest{}
	_ = c.ShouldBindWith(&form, binding.Form)
	errors := map[string]string{}
	if strings.TrimSpace(form.Username) == "" {
		errors["username"] = "Username is required"
	}
	if strings.TrimSpace(form.Email) == "" {
		errors["email"] = "Email is required"
	}
	if len(form.Password) < 8 {
		errors["password"] = "Password must be at least 8 characters"
	}
	if _, taken := models.UserByUsername(form.Username); taken {
		errors["username"] = "Username is already taken"
	}
	if len(errors) > 0 {
		render(c, http.StatusOK, "signup.tmpl", gin.H{"form": form, "errors": errors})
		return
	}
	user, err := models.UserCreate(form.Username, form.Email, form.Name, form.Password)
	if err != nil {
		// Lost the race on the unique index, most likely
		errors["username"] = "Username is already taken"
		render(c, http.StatusOK, "signup.tmpl", gin.H{"form": form, "errors": errors})
		return
	}
	auth.LoadSession(c).LoginUser(user.ID)
	c.Redirect(http.StatusFound, "/")
}

func LoginForm(c *gin.Context) {
	render(c, http.StatusOK, "login.tmpl", gin.H{"next": c.Query("next"), "errors": map[string]string{}})
}

func Login(c *gin.Context) {
	form := LoginRequest{}
	_ = c.ShouldBindWith(&form, binding.Form)
	user, success := models.UserLogin(form.Username, form.Password, form.OtpCode)
	if !success {
		render(c, http.StatusOK, "login.tmpl", gin.H{
			"next":   form.Next,
			"errors": map[string]string{"login": "Wrong username or password"},
		})
		return
	}
	auth.LoadSession(c).LoginUser(user.ID)
	// Only follow same-site redirect targets
	if strings.HasPrefix(form.Next, "/") && !strings.HasPrefix(form.Next, "//") {
		c.Redirect(http.StatusFound, form.Next)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func Logout(c *gin.Context) {
	auth.LoadSession(c).LogoutUser()
	c.Redirect(http.StatusFound, "/")
}
