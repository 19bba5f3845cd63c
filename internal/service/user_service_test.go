package service

import (
	"InterVue/internal/api/dto"
	"InterVue/internal/model"
	"InterVue/internal/pkg/consts"
	"InterVue/internal/pkg/security"
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"sync"
	"testing"
)

type fakeUserRepo struct {
	mu      sync.Mutex
	byID    map[string]*model.User
	updates map[string]map[string]interface{}
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*model.User{}, updates: map[string]map[string]interface{}{}}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", len(f.byID)+1)
	}
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byID[id], nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateUserFields(_ context.Context, id string, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return fmt.Errorf("user %s not found", id)
	}
	f.updates[id] = fields
	return nil
}

type fakeObjectStore struct {
	names []string
	types []string
	sizes []int64
	err   error
}

func (f *fakeObjectStore) Upload(_ context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return "", err
	}
	f.names = append(f.names, objectName)
	f.types = append(f.types, contentType)
	f.sizes = append(f.sizes, size)
	return "https://cdn.test/intervue/" + objectName, nil
}

func newTestUserService(users *fakeUserRepo, cache *fakeCache) UserService {
	tokens := newFakeTokenRepo()
	streaks := newFakeStreakRepo()
	badges := NewBadgeService(newFakeBadgeRepo(), tokens, streaks, newFakeInterviewRepo(), &fakePublisher{})
	return NewUserService(users, NewTokenService(tokens), NewStreakService(streaks), badges, cache)
}

func TestSignUpAndSignIn(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestUserService(users, newFakeCache())
	ctx := context.Background()

	err := svc.SignUp(ctx, &dto.SignUpDTO{Name: " Ada ", Email: " Ada@Example.com ", Password: "secret123"})
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	u, _ := users.GetUserByEmail(ctx, "ada@example.com")
	if u == nil {
		t.Fatal("email should be stored normalized")
	}
	if u.Name != "Ada" || u.Password == "secret123" {
		t.Errorf("name %q, password stored in plain text: %v", u.Name, u.Password == "secret123")
	}

	err = svc.SignUp(ctx, &dto.SignUpDTO{Name: "Ada", Email: "ada@example.com", Password: "other123"})
	if !errors.Is(err, ErrUserExist) {
		t.Errorf("duplicate email: got %v", err)
	}

	token, exp, err := svc.SignIn(ctx, &dto.SignInDTO{Email: "ADA@example.com", Password: "secret123"})
	if err != nil || token == "" || exp.IsZero() {
		t.Fatalf("sign in: token %q exp %v err %v", token, exp, err)
	}
	claims, err := security.ValidateToken(token)
	if err != nil || claims.UserID != u.ID {
		t.Errorf("claims %+v err %v", claims, err)
	}
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestUserService(users, newFakeCache())
	ctx := context.Background()
	if err := svc.SignUp(ctx, &dto.SignUpDTO{Name: "Bo", Email: "bo@example.com", Password: "secret123"}); err != nil {
		t.Fatal(err)
	}

	cases := []dto.SignInDTO{
		{Email: "bo@example.com", Password: "wrong"},
		{Email: "nobody@example.com", Password: "secret123"},
	}
	for _, c := range cases {
		if _, _, err := svc.SignIn(ctx, &c); !errors.Is(err, ErrPasswordIncorrect) {
			t.Errorf("%s: got %v", c.Email, err)
		}
	}
}

func TestSignOutBlacklistsSignature(t *testing.T) {
	cache := newFakeCache()
	svc := newTestUserService(newFakeUserRepo(), cache)
	ctx := context.Background()

	token, _, err := security.GenerateToken("u1")
	if err != nil {
		t.Fatal(err)
	}
	if err = svc.SignOut(ctx, token); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	signature, _ := security.ExtractSignature(token)
	if ok, _ := cache.Exists(ctx, consts.TokenBlacklistKey+signature); !ok {
		t.Error("signature should be blacklisted")
	}

	if err = svc.SignOut(ctx, "garbage"); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("garbage token: got %v", err)
	}
}

func TestGetProfile(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestUserService(users, newFakeCache())
	ctx := context.Background()

	if _, err := svc.GetProfile(ctx, "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("missing user: got %v", err)
	}

	_ = users.CreateUser(ctx, &model.User{ID: "u1", Name: "Cy", Email: "cy@example.com"})
	p, err := svc.GetProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if p.ID != "u1" || p.Name != "Cy" || p.Tokens != 0 || p.Streak == nil || p.Streak.Count != 0 {
		t.Errorf("unexpected profile %+v", p)
	}
}

// buildFileHeader 经 multipart 编解码得到带 Size 的 FileHeader
func buildFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = part.Write(content); err != nil {
		t.Fatal(err)
	}
	_ = w.Close()

	form, err := multipart.NewReader(body, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, x%h, color.RGBA{R: 200, A: 255})
	}
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestUploadAvatar(t *testing.T) {
	users := newFakeUserRepo()
	_ = users.CreateUser(context.Background(), &model.User{ID: "u1"})
	store := &fakeObjectStore{}
	svc := NewMediaService(users, store)

	url, err := svc.UploadAvatar(context.Background(), "u1", buildFileHeader(t, "me.png", "image/png", pngBytes(t, 640, 480)))
	if err != nil {
		t.Fatalf("upload avatar: %v", err)
	}
	if len(store.names) != 1 || !strings.HasPrefix(store.names[0], "avatars/u1/") || store.types[0] != "image/jpeg" {
		t.Errorf("unexpected upload %v %v", store.names, store.types)
	}
	if users.updates["u1"]["profile_url"] != url {
		t.Errorf("profile_url not stored: %v", users.updates["u1"])
	}
}

func TestUploadAvatarRejects(t *testing.T) {
	users := newFakeUserRepo()
	_ = users.CreateUser(context.Background(), &model.User{ID: "u1"})
	store := &fakeObjectStore{}
	svc := NewMediaService(users, store)
	ctx := context.Background()

	if _, err := svc.UploadAvatar(ctx, "u1", buildFileHeader(t, "a.txt", "text/plain", []byte("hi"))); !errors.Is(err, ErrFileNotSupported) {
		t.Errorf("text file: got %v", err)
	}
	if _, err := svc.UploadAvatar(ctx, "u1", buildFileHeader(t, "a.png", "image/png", []byte("not a png"))); !errors.Is(err, ErrFileNotSupported) {
		t.Errorf("undecodable image: got %v", err)
	}
	big := buildFileHeader(t, "big.png", "image/png", make([]byte, avatarMaxSize+1))
	if _, err := svc.UploadAvatar(ctx, "u1", big); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("big file: got %v", err)
	}
	if len(store.names) != 0 {
		t.Errorf("nothing should be uploaded, got %v", store.names)
	}
}

func TestUploadResume(t *testing.T) {
	users := newFakeUserRepo()
	_ = users.CreateUser(context.Background(), &model.User{ID: "u1"})
	store := &fakeObjectStore{}
	svc := NewMediaService(users, store)
	ctx := context.Background()

	url, err := svc.UploadResume(ctx, "u1", buildFileHeader(t, "My CV 2024.PDF", "application/octet-stream", []byte("%PDF-1.4")))
	if err != nil {
		t.Fatalf("upload resume: %v", err)
	}
	if !strings.HasPrefix(store.names[0], "resumes/u1/my-cv-2024-") || !strings.HasSuffix(store.names[0], ".pdf") {
		t.Errorf("object name %q", store.names[0])
	}
	if store.types[0] != "application/pdf" {
		t.Errorf("content type %q", store.types[0])
	}
	if users.updates["u1"]["resume_url"] != url {
		t.Errorf("resume_url not stored: %v", users.updates["u1"])
	}

	if _, err = svc.UploadResume(ctx, "u1", buildFileHeader(t, "cv.exe", "application/octet-stream", []byte("MZ"))); !errors.Is(err, ErrFileNotSupported) {
		t.Errorf("exe: got %v", err)
	}
}

func TestResumeObjectNameFallback(t *testing.T) {
	name := resumeObjectName("u1", "???.docx")
	if !strings.HasPrefix(name, "resumes/u1/resume-") || !strings.HasSuffix(name, ".docx") {
		t.Errorf("object name %q", name)
	}
}
