package studybud

import (
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cydxin/studybud/service"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	uploadURLPrefix = "/uploads"
	avatarSubDir    = "avatars"
	maxAvatarBytes  = 5 << 20
)

// 只接受位图；SVG 可以内嵌脚本，且上传目录与站点同源
var allowedAvatarExt = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
}

var allowedAvatarMIME = []string{"image/png", "image/jpeg", "image/gif", "image/webp"}

const msgAvatarInvalid = "Upload a valid image. The file you uploaded was either not an image or a corrupted image."

// defaultUploadDir derives a stable upload root.
// Priority:
//  1. explicit configured dir
//  2. <exeDir>/uploads
//  3. os.TempDir()/studybud-uploads (最后兜底)
//
// 编译后的二进制里拿不到源码目录，所以用可执行文件所在目录作为应用根目录。
func defaultUploadDir(configured string) string {
	if strings.TrimSpace(configured) != "" {
		return configured
	}
	if exe, err := os.Executable(); err == nil {
		return filepath.Join(filepath.Dir(exe), "uploads")
	}
	return filepath.Join(os.TempDir(), "studybud-uploads")
}

// avatarFileName 随机文件名，保留（小写的）扩展名
func avatarFileName(original string) (string, error) {
	ext := strings.ToLower(filepath.Ext(original))
	if _, ok := allowedAvatarExt[ext]; !ok {
		return "", fmt.Errorf("unsupported avatar extension %q", ext)
	}
	return uuid.NewString() + ext, nil
}

// sniffAvatar 按文件内容判断真实类型，不信任扩展名
func sniffAvatar(fh *multipart.FileHeader) (*mimetype.MIME, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open avatar: %w", err)
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return nil, fmt.Errorf("detect avatar type: %w", err)
	}
	return mtype, nil
}

// removeAvatar 删除 saveAvatar 写入的文件；url 为空时什么都不做
func (c *StudyEngine) removeAvatar(url string) {
	if url == "" {
		return
	}
	dst := filepath.Join(c.config.UploadDir, avatarSubDir, path.Base(url))
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		log.Printf("remove avatar %s: %v", dst, err)
	}
}

// saveAvatar 保存上传的头像，返回写库用的 URL 路径（/uploads/avatars/xxx.png）
func (c *StudyEngine) saveAvatar(ctx *gin.Context, fh *multipart.FileHeader) (string, error) {
	if fh.Size > maxAvatarBytes {
		return "", &service.ValidationError{Fields: map[string]string{
			"avatar": "The file is too large (max 5 MB).",
		}}
	}
	name, err := avatarFileName(fh.Filename)
	if err != nil {
		return "", &service.ValidationError{Fields: map[string]string{"avatar": msgAvatarInvalid}}
	}
	mtype, err := sniffAvatar(fh)
	if err != nil {
		return "", err
	}
	if !mimetype.EqualsAny(mtype.String(), allowedAvatarMIME...) {
		log.Printf("avatar rejected: %s detected as %s", fh.Filename, mtype)
		return "", &service.ValidationError{Fields: map[string]string{"avatar": msgAvatarInvalid}}
	}

	dir := filepath.Join(c.config.UploadDir, avatarSubDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create avatar dir %s: %w", dir, err)
	}
	dst := filepath.Join(dir, name)
	if err := ctx.SaveUploadedFile(fh, dst); err != nil {
		return "", fmt.Errorf("save avatar: %w", err)
	}
	log.Printf("avatar saved to %s", dst)
	return path.Join(uploadURLPrefix, avatarSubDir, name), nil
}
